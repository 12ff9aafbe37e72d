package parser

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/lexer"
	"github.com/sophie-lund/forge/pkg/source"
)

type typeScenario struct {
	Input          string `yaml:"input"`
	Want           string `yaml:"want"`
	WantNone       bool   `yaml:"wantNone"`
	MinDiagnostics int    `yaml:"minDiagnostics"`
}

type exprScenario struct {
	Input          string `yaml:"input"`
	Want           string `yaml:"want"`
	WantError      bool   `yaml:"wantError"`
	MinDiagnostics int    `yaml:"minDiagnostics"`
}

type programScenario struct {
	Name           string `yaml:"name"`
	Input          string `yaml:"input"`
	WantDeclCount  int    `yaml:"wantDeclCount"`
	MinDiagnostics int    `yaml:"minDiagnostics"`
	MaxDiagnostics *int   `yaml:"maxDiagnostics"`
}

type scenarioFile struct {
	Types       []typeScenario    `yaml:"types"`
	Expressions []exprScenario    `yaml:"expressions"`
	Programs    []programScenario `yaml:"programs"`
}

func loadScenarios(t *testing.T) scenarioFile {
	t.Helper()

	raw, err := os.ReadFile("../../testdata/scenarios.yaml")
	require.NoError(t, err)

	var sf scenarioFile
	require.NoError(t, yaml.Unmarshal(raw, &sf))

	return sf
}

// typeString renders a parsed Type the way the scenario fixtures expect:
// pointer nesting as repeated '*', a missing deref type as "missing",
// and leaf types by their surface syntax.
func typeString(typ ast.Type) string {
	switch t := typ.(type) {
	case *ast.TypeMissing:
		return "missing"
	case *ast.TypeBool:
		return "bool"
	case *ast.TypeInt:
		prefix := "i"
		if !t.Signed {
			prefix = "u"
		}
		return fmt.Sprintf("%s%d", prefix, t.BitWidth)
	case *ast.TypeFloat:
		return fmt.Sprintf("f%d", t.BitWidth)
	case *ast.TypePointer:
		return "*" + typeString(t.DerefType)
	default:
		return "?"
	}
}

func scenarioParser(t *testing.T, content string) (*Parser, *diag.Sink) {
	t.Helper()

	ctx := source.NewContext()
	ref := ctx.AddFromString("scenario.forge", content)
	sink := diag.NewSink()

	tokens, err := lexer.Lex(ref, sink)
	require.NoError(t, err)

	return New(ref, tokens, sink), sink
}

func TestScenarios_Types(t *testing.T) {
	sf := loadScenarios(t)

	for _, sc := range sf.Types {
		sc := sc
		t.Run(sc.Input, func(t *testing.T) {
			p, sink := scenarioParser(t, sc.Input)

			typ, ok := p.parseType()

			if sc.WantNone {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				assert.Equal(t, sc.Want, typeString(typ))
			}

			assert.GreaterOrEqual(t, sink.Len(), sc.MinDiagnostics)
		})
	}
}

func TestScenarios_Expressions(t *testing.T) {
	sf := loadScenarios(t)

	for _, sc := range sf.Expressions {
		sc := sc
		t.Run(sc.Input, func(t *testing.T) {
			p, sink := scenarioParser(t, sc.Input)

			expr, ok := p.parseExpr()

			if sc.WantError {
				// A malformed numeric literal is usually recovered (e.g. a
				// missing exponent digit), but one with an integer suffix
				// on a floating-point value is rejected outright and
				// produces no expression at all.
				assert.True(t, sink.HasSeverityAtLeast(diag.SeverityError))
				return
			}

			require.True(t, ok, "a well-formed numeric literal always produces a value expression")
			assert.GreaterOrEqual(t, sink.Len(), sc.MinDiagnostics)

			switch v := expr.(type) {
			case *ast.ExprInt:
				assert.Equal(t, sc.Want, v.Value.String())
			case *ast.ExprFloat:
				assert.Equal(t, sc.Want, v.Value.String())
			default:
				t.Fatalf("unexpected expression node type %T for input %q", expr, sc.Input)
			}
		})
	}
}

func TestScenarios_Programs(t *testing.T) {
	sf := loadScenarios(t)

	for _, sc := range sf.Programs {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			ctx := source.NewContext()
			ref := ctx.AddFromString(sc.Name+".forge", sc.Input)
			sink := diag.NewSink()

			tokens, err := lexer.Lex(ref, sink)
			require.NoError(t, err)

			program := ParseProgram(ref, tokens, sink)
			require.NotNil(t, program)

			assert.Len(t, program.Decls, sc.WantDeclCount)

			assert.GreaterOrEqual(t, sink.Len(), sc.MinDiagnostics)
			if sc.MaxDiagnostics != nil {
				assert.LessOrEqual(t, sink.Len(), *sc.MaxDiagnostics)
			}
		})
	}
}
