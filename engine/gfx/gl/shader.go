package glbackend

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader wraps one linked program. It is compiled once and never rebuilt.
type Shader struct {
	ID uint32
}

// NewShader compiles and links a program from null-terminated GLSL sources.
// Compile and link failures are logged; the returned program may then be unusable.
func NewShader(vertSrc, fragSrc string) *Shader {
	prog, err := makeProgram(vertSrc, fragSrc)
	if err != nil {
		log.Printf("shader: %v", err)
	}
	return &Shader{ID: prog}
}

func (s *Shader) Use() { gl.UseProgram(s.ID) }

func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// Uniform locations are looked up on every call.
func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

func (s *Shader) SetInt(name string, v int32)     { gl.Uniform1i(s.location(name), v) }
func (s *Shader) SetFloat(name string, v float32) { gl.Uniform1f(s.location(name), v) }

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &v[0])
}

func (s *Shader) SetVec3f(name string, x, y, z float32) {
	gl.Uniform3f(s.location(name), x, y, z)
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(infoLog))
		return sh, fmt.Errorf("%s compile error: %s", stageName(shaderType), strings.TrimRight(infoLog, "\x00"))
	}
	return sh, nil
}

// makeProgram always returns the program object so a broken program still
// has a valid handle; the error carries every diagnostic produced.
func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	var errs []string
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		errs = append(errs, err.Error())
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		errs = append(errs, err.Error())
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		errs = append(errs, "program link error: "+strings.TrimRight(infoLog, "\x00"))
	}
	if len(errs) > 0 {
		return prog, errors.New(strings.Join(errs, "; "))
	}
	return prog, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	default:
		return "shader"
	}
}
