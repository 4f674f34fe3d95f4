// Package mustuse provides an analyzer reporting Result values which are
// discarded without being handled.
package mustuse

import (
	"fmt"
	"go/ast"
	"log/slog"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/mustuse/internal/config"
	"github.com/sirkon/mustuse/internal/detector"
	"github.com/sirkon/mustuse/internal/goast"
	"github.com/sirkon/mustuse/internal/report"
	"github.com/sirkon/mustuse/internal/rules"
	"github.com/sirkon/mustuse/internal/suppress"
	"github.com/sirkon/mustuse/internal/syntax"
)

const doc = `mustuse reports discarded Result values

A call is considered to produce a Result when its type is one of the
configured Result types or, without type information, when its source text
mentions one of the vocabulary methods (Map, MapErr, AndThen, OrElse, Match,
UnwrapOr and their lower-case forms). Such a call is reported when its value
is dropped: used as a statement, deferred or started as a goroutine.

A statement can be excluded with a //mustuse:ignore comment either trailing
it or placed on the line above.`

// Analyzer checks packages with the default configuration, which flags can change.
var Analyzer = NewAnalyzer(config.Default())

// NewAnalyzer creates an analyzer with the given base configuration. The
// -config flag replaces the base configuration, the other flags override
// individual values of it.
func NewAnalyzer(cfg config.Config) *analysis.Analyzer {
	s := &settings{base: cfg}
	s.resolved = sync.OnceValues(s.resolve)

	a := &analysis.Analyzer{
		Name:     "mustuse",
		Doc:      doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      s.run,
	}

	a.Flags.StringVar(&s.configPath, "config", "", "path to YAML configuration file")
	a.Flags.Var(&s.vocabulary, "vocabulary", "comma-separated method names marking Result calls")
	a.Flags.Var(&s.scope, "scope", "part of a call matched against the vocabulary: expression or callee")
	a.Flags.Var(&s.resultTypes, "result-types", `comma-separated Result types, like "github.com/samber/mo".Result`)

	return a
}

type settings struct {
	base       config.Config
	configPath string

	vocabulary  nameList
	scope       scopeValue
	resultTypes referenceList

	resolved func() (config.Config, error)
}

// resolve merges flags into the configuration. Flags are parsed before the
// first run, so it is computed once on demand.
func (s *settings) resolve() (config.Config, error) {
	cfg := s.base
	if s.configPath != "" {
		var err error
		cfg, err = config.Load(s.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	if s.vocabulary.set {
		cfg.Vocabulary = s.vocabulary.names
	}
	if s.scope.set {
		cfg.Scope = s.scope.scope
	}
	if s.resultTypes.set {
		cfg.ResultTypes = s.resultTypes.refs
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Debug(
		"mustuse configuration",
		slog.String("config-path", s.configPath),
		slog.Any("vocabulary", cfg.Vocabulary),
		slog.Bool("exported", cfg.Exported),
		slog.String("scope", cfg.Scope.String()),
		slog.Int("result-types", len(cfg.ResultTypes)),
		slog.Bool("known-types", cfg.KnownTypes),
	)

	return cfg, nil
}

type fileState struct {
	skip    bool
	ignored *suppress.Index
}

func (s *settings) run(pass *analysis.Pass) (any, error) {
	cfg, err := s.resolved()
	if err != nil {
		return nil, err
	}

	vocab, err := cfg.DetectorVocabulary()
	if err != nil {
		return nil, fmt.Errorf("setup vocabulary: %w", err)
	}

	opts := []detector.Option{
		detector.WithVocabulary(vocab),
		detector.WithScope(cfg.Scope),
	}
	if refs := newKnownResultTypes(cfg.ResultTypes, cfg.KnownTypes); len(refs) > 0 {
		opts = append(opts, detector.WithTypeResolver(goast.NewTypeResolver(pass.TypesInfo, refs)))
	}

	var (
		rep     report.Reporter
		current *fileState
	)
	rule := rules.MustUseResult()
	d := detector.New(func(node syntax.Node, id rules.MessageID) {
		n := node.(*goast.Node).AST()
		if current.ignored.Covers(n.Pos()) {
			return
		}

		rep.Report(report.Report{
			Rule:      rule,
			MessageID: id,
			Pos:       n.Pos(),
			End:       n.End(),
		})
	}, opts...)

	src := goast.NewSource(pass.Fset, pass.ReadFile)
	files := map[*ast.File]*fileState{}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		file := stack[0].(*ast.File)
		st, ok := files[file]
		if !ok {
			st = &fileState{
				skip:    !cfg.IncludeGenerated && ast.IsGenerated(file),
				ignored: suppress.Collect(pass.Fset, file, cfg.IgnoreDirective),
			}
			files[file] = st
		}
		if st.skip {
			return true
		}

		current = st
		d.Inspect(goast.At(src, stack))
		return true
	})

	for _, diag := range rep.Diagnostics() {
		pass.Report(diag)
	}

	return nil, nil
}
