package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/ast/astutil"
)

const (
	modulePathPrefix = "github.com/nfrund/lessonhub/internal/modules/"
	modulesFile      = "internal/app/modules.go"
)

var (
	moduleName string
	validName  = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

	majorVersion = regexp.MustCompile(`^v[0-9]+$`)
)

var newModuleCmd = &cobra.Command{
	Use:   "new-module",
	Short: "Scaffold a new application module",
	Long: `Creates internal/modules/<name> with a module serving a page at /<name>
and adds it to NewModules in internal/app/modules.go.
Run it from the repository root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !validName.MatchString(moduleName) {
			return fmt.Errorf("module name must be a lowercase identifier: --name=<module-name>, got %q", moduleName)
		}
		if err := checkNameFree(moduleName); err != nil {
			return err
		}
		if err := generateModule(moduleName); err != nil {
			return fmt.Errorf("generate module: %w", err)
		}
		if err := updateModulesFile(moduleName); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Automatic update of %s failed: %v\n", modulesFile, err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Add this entry to NewModules manually:\n\n\t%s.New(%s.Dependencies{}),\n", moduleName, moduleName)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created module '%s' in internal/modules/%s/ and registered it in %s\n", moduleName, moduleName, modulesFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newModuleCmd)
	newModuleCmd.Flags().StringVarP(&moduleName, "name", "n", "", "The name of the new module (e.g., 'quizzes')")
}

type templateData struct {
	Name       string
	PascalName string
}

func generateModule(name string) error {
	data := templateData{
		Name:       name,
		PascalName: cases.Title(language.English).String(name),
	}

	moduleDir := filepath.Join("internal", "modules", name)
	if _, err := os.Stat(moduleDir); err == nil {
		return fmt.Errorf("%s already exists", moduleDir)
	}
	if err := os.MkdirAll(moduleDir, 0o755); err != nil {
		return fmt.Errorf("failed to create module directory: %w", err)
	}
	return generateFile(filepath.Join(moduleDir, "module.go"), moduleTemplate, data)
}

func generateFile(path string, tmpl string, data templateData) error {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", path, err)
	}
	return os.WriteFile(path, src, 0o644)
}

// checkNameFree rejects names that are Go keywords or that would shadow an
// import already used by the modules file.
func checkNameFree(name string) error {
	if token.IsKeyword(name) {
		return fmt.Errorf("module name %q is a Go keyword", name)
	}

	node, err := parser.ParseFile(token.NewFileSet(), modulesFile, nil, parser.ImportsOnly)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", modulesFile, err)
	}
	for _, imp := range node.Imports {
		if importName(imp) == name {
			return fmt.Errorf("module name %q clashes with an import in %s", name, modulesFile)
		}
	}
	return nil
}

// importName is the identifier an import is referred to by: its alias, or
// the last path element with any major version suffix skipped.
func importName(imp *ast.ImportSpec) string {
	if imp.Name != nil {
		return imp.Name.Name
	}
	p, err := strconv.Unquote(imp.Path.Value)
	if err != nil {
		return ""
	}
	base := path.Base(p)
	if majorVersion.MatchString(base) {
		base = path.Base(path.Dir(p))
	}
	return strings.ReplaceAll(base, "-", "")
}

// updateModulesFile imports the new module and appends name.New(...) to the
// slice returned by NewModules.
func updateModulesFile(name string) error {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, modulesFile, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", modulesFile, err)
	}

	astutil.AddImport(fset, node, modulePathPrefix+name)

	var updated bool
	ast.Inspect(node, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncDecl)
		if !ok || fn.Name.Name != "NewModules" {
			return true
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			ret, ok := n.(*ast.ReturnStmt)
			if !ok || len(ret.Results) == 0 {
				return true
			}
			compLit, ok := ret.Results[0].(*ast.CompositeLit)
			if !ok {
				return false
			}
			compLit.Elts = append(compLit.Elts, &ast.CallExpr{
				Fun: &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent("New")},
				Args: []ast.Expr{
					&ast.CompositeLit{Type: &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent("Dependencies")}},
				},
			})
			updated = true
			return false
		})
		return false
	})
	if !updated {
		return errors.New("no NewModules return statement with a slice literal")
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		return fmt.Errorf("failed to format AST: %w", err)
	}
	return os.WriteFile(modulesFile, buf.Bytes(), 0o644)
}

const moduleTemplate = `// Package {{.Name}} is the {{.PascalName}} module.
package {{.Name}}

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/module"
	"github.com/nfrund/lessonhub/internal/registry"
	"github.com/nfrund/lessonhub/internal/view"
	"github.com/nfrund/lessonhub/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Dependencies struct{}

type Module struct {
	module.BaseModule
	deps Dependencies
}

func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "{{.Name}}"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting {{.PascalName}} module")
	group.GET("/{{.Name}}", m.get)
	return nil
}

func (m *Module) get(c echo.Context) error {
	content := h.H1(g.Text("Hello from the {{.PascalName}} module!"))
	page := layouts.Base(c.Request().Context(), "{{.PascalName}}", view.GetFlashData(c), content)
	return c.Render(http.StatusOK, "", page)
}
`
