package glview

import (
	"fmt"
	"strings"

	"tiffview/internal/contrast"
	"tiffview/internal/errors"
	"tiffview/internal/render"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type program struct {
	id     uint32
	minLoc int32
	maxLoc int32
}

func newProgram(s render.Shaders) (*program, error) {
	vs, err := compileShader(s.Vertex, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(s.Fragment, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		info := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(id, n, nil, gl.Str(info))
		gl.DeleteProgram(id)
		return nil, errors.NewDisplayError("failed to link shader program", "link", errors.ShaderLinkFailed,
			fmt.Errorf("%s", strings.TrimRight(info, "\x00\n")))
	}

	p := &program{
		id:     id,
		minLoc: gl.GetUniformLocation(id, gl.Str(render.UniformMin+"\x00")),
		maxLoc: gl.GetUniformLocation(id, gl.Str(render.UniformMax+"\x00")),
	}

	gl.UseProgram(id)
	gl.Uniform1i(gl.GetUniformLocation(id, gl.Str(render.UniformSampler+"\x00")), 0)
	return p, nil
}

func compileShader(source string, kind uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		info := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(info))
		gl.DeleteShader(shader)
		return 0, errors.NewDisplayError("failed to compile "+stage+" shader", stage, errors.ShaderCompileFailed,
			fmt.Errorf("%s", strings.TrimRight(info, "\x00\n")))
	}
	return shader, nil
}

func (p *program) use() {
	gl.UseProgram(p.id)
}

func (p *program) setBounds(b contrast.Bounds) {
	gl.Uniform1f(p.minLoc, b.Min)
	gl.Uniform1f(p.maxLoc, b.Max)
}

func (p *program) delete() {
	gl.DeleteProgram(p.id)
}
