package compiler

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/neok-m4700/f18/colors"
	"github.com/neok-m4700/f18/internal/diagnostics"
	"github.com/neok-m4700/f18/internal/evaluate"
	"github.com/neok-m4700/f18/internal/evaluate/exprtext"
	"github.com/neok-m4700/f18/internal/utils/fs"
	"github.com/neok-m4700/f18/internal/utils/numeric"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
)

// Name given to in-memory code in locations and diagnostics.
const inMemoryName = "<input>"

// Options for evaluation
type Options struct {
	// For file-based evaluation
	EntryFile string
	// For in-memory evaluation (WASM, stdin)
	Code string
	// Debug logging when Logger is nil
	Debug bool
	// Diagnostics rendering: ANSI text or HTML
	LogFormat FORMAT
	// Fold integer trees before printing
	Fold bool
	// Report folding overflows; when false Fold runs without a message sink
	Diagnostics bool
	Logger      *zap.Logger
}

// Result of evaluation. Output holds one line per tree; Diagnostics holds
// the rendered diagnostics and summary in the requested format.
type Result struct {
	Success     bool
	Output      string
	Diagnostics string
}

type session struct {
	opts   *Options
	name   string
	log    *zap.Logger
	bag    *diagnostics.DiagnosticBag
	trees  []exprtext.Tree
	output strings.Builder
}

func newSession(opts *Options) (*session, error) {
	s := &session{opts: opts, log: opts.Logger}
	if s.log == nil {
		s.log = zap.NewNop()
		if opts.Debug {
			if l, err := zap.NewDevelopment(); err == nil {
				s.log = l
			}
		}
	}

	text := opts.Code
	s.name = inMemoryName
	if opts.EntryFile != "" {
		if fs.IsDir(opts.EntryFile) {
			return nil, errors.Newf("%s is a directory", opts.EntryFile)
		}
		if !fs.IsValidFile(opts.EntryFile) {
			return nil, errors.Newf("File not found: %s", opts.EntryFile)
		}
		data, err := os.ReadFile(opts.EntryFile)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", opts.EntryFile)
		}
		s.name = opts.EntryFile
		text = string(data)
	}

	s.bag = diagnostics.NewDiagnosticBag(s.name)
	s.bag.AddSourceContent(s.name, text)

	trees, err := exprtext.ReadAll(s.name, text)
	if err != nil {
		var readErr *exprtext.Error
		if errors.As(err, &readErr) {
			s.bag.Add(readErr.Diagnostic())
		} else {
			s.bag.Add(diagnostics.NewError(err.Error()))
		}
		s.log.Debug("read failed", zap.String("file", s.name), zap.Error(err))
		return s, nil
	}
	s.trees = trees
	s.log.Debug("read trees", zap.String("file", s.name), zap.Int("count", len(trees)))
	return s, nil
}

// messages is the sink handed to Fold. A nil interface, not a nil bag,
// when diagnostics are off.
func (s *session) messages() evaluate.Messages {
	if !s.opts.Diagnostics {
		return nil
	}
	return s.bag
}

// fold folds an integer root; other categories have no folding rule.
func (s *session) fold(t exprtext.Tree) {
	if !s.opts.Fold {
		return
	}
	if a, ok := t.Expr.(*evaluate.AnyInteger); ok {
		before := s.bag.WarningCount()
		a.Fold(t.Loc, s.messages())
		s.log.Debug("folded",
			zap.Stringer("at", t.Loc),
			zap.String("text", t.Loc.GetText(s.bag.Cache())),
			zap.String("type", a.Type().Dump()),
			zap.Int("warnings", s.bag.WarningCount()-before))
	}
}

func (s *session) println(text string) {
	s.output.WriteString(text)
	s.output.WriteByte('\n')
}

func (s *session) result() Result {
	r := Result{Success: !s.bag.HasErrors(), Output: s.output.String()}
	if s.opts.LogFormat == HTML {
		r.Diagnostics = s.bag.EmitAllToHTML()
	} else {
		r.Diagnostics = s.bag.EmitAllToString()
	}
	if ce := s.log.Check(zap.DebugLevel, "done"); ce != nil {
		ce.Write(
			zap.Bool("success", r.Success),
			zap.Int("errors", s.bag.ErrorCount()),
			zap.Int("warnings", s.bag.WarningCount()),
			zap.String("diagnostics", colors.StripANSI(s.bag.EmitAllToString())))
	}
	_ = s.log.Sync()
	return r
}

func run(opts *Options, each func(s *session, t exprtext.Tree)) Result {
	s, err := newSession(opts)
	if err != nil {
		return Result{Success: false, Output: err.Error()}
	}
	for _, t := range s.trees {
		each(s, t)
	}
	return s.result()
}

// Compile reads every tree, folds integer trees when asked, and dumps each
// one.
func Compile(opts *Options) Result {
	return run(opts, func(s *session, t exprtext.Tree) {
		s.fold(t)
		s.println(evaluate.String(t.Expr))
	})
}

// Length prints LEN of every tree, folded when asked. Non-character trees
// are errors.
func Length(opts *Options) Result {
	return run(opts, func(s *session, t exprtext.Tree) {
		c, ok := t.Expr.(*evaluate.AnyCharacter)
		if !ok {
			s.bag.Add(diagnostics.NotCharacter(s.name, t.Loc, t.Expr.Type().Dump()))
			return
		}
		n := c.LEN()
		if s.opts.Fold {
			n.Fold(t.Loc, s.messages())
		}
		s.println(evaluate.String(n))
	})
}

// Describe folds every tree and prints its type with the exact value of a
// constant result. A result that is not constant is noted.
func Describe(opts *Options) Result {
	return run(opts, func(s *session, t exprtext.Tree) {
		s.fold(t)
		typ := t.Expr.Type().Dump()
		if v, ok := exactValue(t.Expr); ok {
			s.println(typ + " " + v)
			return
		}
		s.bag.Add(diagnostics.NotConstant(s.name, t.Loc))
		s.println(typ + " " + evaluate.String(t.Expr))
	})
}

type wrapper interface {
	Unwrap() evaluate.Expr
}

// The trees of every kind of a category share one Constant signature.
type integerConstant interface {
	Constant() (numeric.Int, bool)
}

type realConstant interface {
	Constant() (numeric.Real, bool)
}

type complexConstant interface {
	Constant() (numeric.Complex, bool)
}

type characterConstant interface {
	Constant() (string, bool)
}

// exactValue renders the value of a constant root in decimal.
func exactValue(e evaluate.Expr) (string, bool) {
	if w, ok := e.(wrapper); ok {
		e = w.Unwrap()
	}
	switch x := e.(type) {
	case integerConstant:
		v, ok := x.Constant()
		if !ok {
			return "", false
		}
		return v.SignedDecimal(), true
	case realConstant:
		v, ok := x.Constant()
		if !ok {
			return "", false
		}
		return v.ExactDecimal(), true
	case complexConstant:
		v, ok := x.Constant()
		if !ok {
			return "", false
		}
		return v.ExactDecimal(), true
	case characterConstant:
		v, ok := x.Constant()
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%q", v), true
	case *evaluate.Logical:
		v, ok := x.Constant()
		if !ok {
			return "", false
		}
		if v {
			return ".TRUE.", true
		}
		return ".FALSE.", true
	}
	return "", false
}
