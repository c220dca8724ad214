// Package opengl provides an OpenGL 4.1 renderer and GLFW host adapters for
// the gui engine.
package opengl

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/go-theft-auto/framegui"
	"github.com/go-theft-auto/framegui/backend/batch"
	"github.com/go-theft-auto/framegui/fontmeasure"
)

// Renderer implements gui.Renderer using OpenGL. A frame may arrive in
// several Render calls; clip state carries over until the end-frame
// command.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	whiteTex     uint32
	projLoc      int32
	texLoc       int32
	alphaMaskLoc int32
	width        int
	height       int

	fonts   *glyphCache
	builder *batch.Builder
}

var _ gui.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer for a width x height framebuffer. Text is
// rasterized from the faces of measurer, which should be the one passed to
// gui.New.
func NewRenderer(width, height int, measurer *fontmeasure.Measurer) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.alphaMaskLoc = gl.GetUniformLocation(r.shader, gl.Str("alphaMask\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos (2 floats) + TexCoord (2 floats) + Color (normalized uint8x4)
	stride := int32(unsafe.Sizeof(batch.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(batch.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(batch.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.whiteTex = createWhiteTexture()
	if measurer == nil {
		measurer = fontmeasure.Default()
	}
	r.fonts = newGlyphCache(measurer)
	r.builder = batch.NewBuilder(r.fonts, r.whiteTex)
	r.builder.SetScreen(gui.Vec2{X: float32(width), Y: float32(height)})
	return r, nil
}

// createWhiteTexture creates the 1x1 full-coverage texture used for
// untextured geometry.
func createWhiteTexture() uint32 {
	var tex uint32
	pixel := []byte{255}
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, 1, 1, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixel))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Resize updates the framebuffer size. Frames also announce their size in
// the begin-frame command.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.builder.SetScreen(gui.Vec2{X: float32(width), Y: float32(height)})
}

// Render draws a chunk of recorded commands.
func (r *Renderer) Render(cmds *gui.CommandList) error {
	if cmds == nil || cmds.Len() == 0 {
		return nil
	}
	r.builder.Reset()
	r.builder.Add(cmds.Commands)
	if screen := r.builder.Screen(); screen.X > 0 && screen.Y > 0 {
		r.width, r.height = int(screen.X), int(screen.Y)
	}
	if len(r.builder.Indices) == 0 {
		return nil
	}

	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	b := r.builder
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*int(unsafe.Sizeof(batch.Vertex{})), gl.Ptr(b.Vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, gl.Ptr(b.Indices), gl.STREAM_DRAW)

	for _, dc := range b.Calls {
		if dc.ElemCount == 0 || !r.scissor(dc.Clip) {
			continue
		}
		gl.BindTexture(gl.TEXTURE_2D, dc.Texture)
		if dc.AlphaMask {
			gl.Uniform1i(r.alphaMaskLoc, 1)
		} else {
			gl.Uniform1i(r.alphaMaskLoc, 0)
		}
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(dc.ElemCount), gl.UNSIGNED_INT, uintptr(dc.IndexOffset)*4)
	}

	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	gl.BindVertexArray(0)

	if err := gl.GetError(); err != gl.NO_ERROR {
		return fmt.Errorf("opengl error 0x%x", err)
	}
	return nil
}

// scissor applies a clip rectangle, flipping Y for OpenGL. It returns false
// when nothing would be visible.
func (r *Renderer) scissor(clip gui.Rect) bool {
	x := int32(clip.X)
	y := int32(float32(r.height) - clip.Y - clip.H)
	w := int32(clip.W)
	h := int32(clip.H)
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if w <= 0 || h <= 0 {
		return false
	}
	gl.Scissor(x, y, w, h)
	return true
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// LoadImage uploads img as an RGBA texture for use with gui.Image and
// gui.ImageButton.
func (r *Renderer) LoadImage(img image.Image) gui.ImageRef {
	b := img.Bounds()
	if b.Empty() {
		return gui.ImageRef{}
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return gui.ImageRef{
		Texture: tex,
		Size:    gui.Vec2{X: float32(b.Dx()), Y: float32(b.Dy())},
		UV1:     gui.Vec2{X: 1, Y: 1},
	}
}

// DeleteImage releases a texture created by LoadImage.
func (r *Renderer) DeleteImage(ref gui.ImageRef) {
	if ref.Texture != 0 {
		gl.DeleteTextures(1, &ref.Texture)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	r.fonts.delete()
	if r.whiteTex != 0 {
		gl.DeleteTextures(1, &r.whiteTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}
