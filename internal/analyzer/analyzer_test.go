package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFile(t *testing.T) {
	a, ok := ForFile("internal/server/main.go")
	require.True(t, ok)
	assert.Equal(t, "go", a.Language())

	a, ok = ForFile("scripts/deploy.py")
	require.True(t, ok)
	assert.Equal(t, "python", a.Language())

	_, ok = ForFile("README.md")
	assert.False(t, ok)
}

func TestGoAnalyzer(t *testing.T) {
	source := `package server

import "net/http"

const defaultPort = 8080

var ErrClosed = errors.New("closed")

type Server struct {
	addr string
}

type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

func NewServer(addr string) *Server {
	return &Server{addr: addr}
}

func (s *Server) Listen() error {
	return nil
}
`

	symbols := GoAnalyzer{}.Analyze(source)

	byName := map[string]Symbol{}
	for _, sym := range symbols {
		byName[sym.Name] = sym
	}

	assert.Equal(t, "value", byName["defaultPort"].Kind)
	assert.Equal(t, "value", byName["ErrClosed"].Kind)
	assert.Equal(t, "struct", byName["Server"].Kind)
	assert.Equal(t, "interface", byName["Handler"].Kind)
	assert.Equal(t, "func", byName["NewServer"].Kind)
	assert.Equal(t, "method", byName["Listen"].Kind)
	assert.Equal(t, 5, byName["defaultPort"].Line)
}

func TestGoAnalyzerIgnoresIndentedCode(t *testing.T) {
	source := "func outer() {\n\tinner := func() {}\n\t_ = inner\n}\n"

	symbols := GoAnalyzer{}.Analyze(source)

	require.Len(t, symbols, 1)
	assert.Equal(t, "outer", symbols[0].Name)
}

func TestPythonAnalyzer(t *testing.T) {
	source := `import os

class Repository:
    def __init__(self, path):
        self.path = path

    async def fetch(self):
        pass

def main():
    pass
`

	symbols := PythonAnalyzer{}.Analyze(source)

	require.Len(t, symbols, 4)
	assert.Equal(t, Symbol{Name: "Repository", Kind: "class", Line: 3}, symbols[0])
	assert.Equal(t, Symbol{Name: "__init__", Kind: "method", Line: 4}, symbols[1])
	assert.Equal(t, Symbol{Name: "fetch", Kind: "method", Line: 7}, symbols[2])
	assert.Equal(t, Symbol{Name: "main", Kind: "def", Line: 10}, symbols[3])
}

func TestOutline(t *testing.T) {
	files := map[string][]Symbol{
		"b.go": {{Name: "Run", Kind: "func"}},
		"a.go": {{Name: "Config", Kind: "struct"}},
		"c.go": nil,
	}

	outline := Outline(files)

	assert.Equal(t, "a.go:\n  struct Config\nb.go:\n  func Run", outline)
}

func TestOutlineEmpty(t *testing.T) {
	assert.Empty(t, Outline(nil))
}
