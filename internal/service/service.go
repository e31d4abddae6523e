// Package service orchestrates the maintenance operations behind the CLI
// commands: fix passes, audits, codemods, config generation, and the
// typecheck loop.
package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/webmend/webmend/internal/audit"
	"github.com/webmend/webmend/internal/codemod"
	"github.com/webmend/webmend/internal/config"
	"github.com/webmend/webmend/internal/fixers"
	"github.com/webmend/webmend/internal/project"
	"github.com/webmend/webmend/internal/scaffold"
	"github.com/webmend/webmend/internal/secrets"
	"github.com/webmend/webmend/internal/storage"
	"github.com/webmend/webmend/internal/terminal"
	"github.com/webmend/webmend/internal/typecheck"
	"github.com/webmend/webmend/internal/watch"
)

// Service wires the project configuration, rule config, and state stores
// behind the CLI operations.
type Service struct {
	cfg     *config.Config
	rules   *config.Rules
	project *storage.ProjectStore
	runs    *storage.RunLog
	scores  *storage.ScoreStore
	secrets secrets.SecretStore
}

// New builds a service for the project containing dir (or the current
// directory when dir is empty).
func New(dir string) (*Service, error) {
	var cfg *config.Config
	var err error
	if dir == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFrom(dir)
	}
	if err != nil {
		return nil, err
	}
	if !cfg.HasSrc() {
		return nil, fmt.Errorf("no src/ directory under %s", cfg.ProjectRoot)
	}
	if err := cfg.EnsureWebmendDir(); err != nil {
		return nil, err
	}

	rules, err := config.LoadRules(cfg.ProjectRoot)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:     cfg,
		rules:   rules,
		project: storage.NewProjectStore(cfg.WebmendDir),
		runs:    storage.NewRunLog(cfg.WebmendDir),
		scores:  storage.NewScoreStore(cfg.WebmendDir),
		secrets: secrets.New(cfg.WebmendDir),
	}, nil
}

// Config exposes the resolved project configuration.
func (s *Service) Config() *config.Config { return s.cfg }

// Rules exposes the parsed rule configuration.
func (s *Service) Rules() *config.Rules { return s.rules }

// Runs exposes the run log for history display.
func (s *Service) Runs() *storage.RunLog { return s.runs }

// Scores exposes the daily score history.
func (s *Service) Scores() *storage.ScoreStore { return s.scores }

// Secrets exposes the credential store.
func (s *Service) Secrets() secrets.SecretStore { return s.secrets }

// sources collects the project's source files relative to src/.
func (s *Service) sources() ([]string, error) {
	files, err := project.CollectSources(os.DirFS(s.cfg.SrcDir), ".", s.rules)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.cfg.SrcDir, err)
	}
	return files, nil
}

// record appends a run log entry. Logging failures never fail the operation.
func (s *Service) record(op string, started time.Time, seen, changed, score int) {
	_ = s.runs.Append(storage.RunRecord{
		Op:           op,
		FilesSeen:    seen,
		FilesChanged: changed,
		Score:        score,
		DurationMS:   time.Since(started).Milliseconds(),
		CreatedAt:    time.Now(),
	})
}

// FixOpts controls a fix pass.
type FixOpts struct {
	DryRun bool
	// Only restricts the pass to the named fixers.
	Only []string
}

// Fix runs the enabled fixers over every source file.
func (s *Service) Fix(opts FixOpts) (*project.Result, error) {
	started := time.Now()

	var active []fixers.Fixer
	if len(opts.Only) > 0 {
		var err error
		active, err = fixers.Lookup(opts.Only)
		if err != nil {
			return nil, err
		}
	} else {
		active = fixers.Enabled(s.rules)
	}
	if len(active) == 0 {
		return nil, fmt.Errorf("no fixers enabled")
	}

	files, err := s.sources()
	if err != nil {
		return nil, err
	}

	chain := fixers.Chain(active)
	result := project.Apply(s.cfg.SrcDir, files, opts.DryRun, func(path, content string) (string, []string, error) {
		updated, notes := chain(content)
		return updated, notes, nil
	})

	if s.rules.Strict && len(result.Errors) > 0 {
		return result, fmt.Errorf("%d file(s) failed: %s", len(result.Errors), result.Errors[0])
	}
	if !opts.DryRun {
		s.record("fix", started, result.Seen, result.Changed, 0)
	}
	return result, nil
}

// Audit scans every source file against the audit rules and records the
// score. The report is returned even when the score is poor; threshold
// enforcement belongs to the caller.
func (s *Service) Audit() (*audit.Report, error) {
	started := time.Now()

	files, err := s.sources()
	if err != nil {
		return nil, err
	}

	report := audit.Run(os.DirFS(s.cfg.SrcDir), files, s.rules)
	if s.rules.Strict && len(report.ReadErrors) > 0 {
		return report, fmt.Errorf("%d file(s) unreadable: %s", len(report.ReadErrors), report.ReadErrors[0])
	}

	s.record("audit", started, report.FilesChecked, 0, report.Score)
	_ = s.scores.RecordScore(report.Score, len(report.Violations))
	return report, nil
}

// MinScore resolves the audit threshold: the flag wins, then .webmend.yml,
// then no threshold.
func (s *Service) MinScore(flag int) int {
	if flag > 0 {
		return flag
	}
	return s.rules.MinScore
}

// Codemod runs the named codemods over every source file.
func (s *Service) Codemod(names []string, dryRun bool) (*project.Result, error) {
	started := time.Now()

	mods, err := codemod.Lookup(names)
	if err != nil {
		return nil, err
	}
	if len(mods) == 0 {
		return nil, fmt.Errorf("no codemods selected")
	}

	files, err := s.sources()
	if err != nil {
		return nil, err
	}

	result := project.Apply(s.cfg.SrcDir, files, dryRun, func(path, content string) (string, []string, error) {
		var notes []string
		for _, m := range mods {
			updated, n := m.Apply(content)
			if updated != content {
				for _, note := range n {
					notes = append(notes, m.Name+": "+note)
				}
				content = updated
			}
		}
		return content, notes, nil
	})

	if s.rules.Strict && len(result.Errors) > 0 {
		return result, fmt.Errorf("%d file(s) failed: %s", len(result.Errors), result.Errors[0])
	}
	if !dryRun {
		s.record("codemod", started, result.Seen, result.Changed, 0)
	}
	return result, nil
}

// Generate regenerates tsconfig.json and vite.config.ts from webmend.json.
// With checkOnly it reports drift without writing. The returned slice names
// the files that were stale before this call.
func (s *Service) Generate(checkOnly bool) ([]string, error) {
	started := time.Now()

	cfg, err := scaffold.LoadOrDefault(s.cfg.ProjectRoot, s.cfg.PackageName())
	if err != nil {
		return nil, err
	}

	stale := scaffold.Drift(s.cfg.ProjectRoot, cfg)
	if checkOnly {
		return stale, nil
	}

	if err := scaffold.Apply(s.cfg.ProjectRoot, cfg); err != nil {
		return stale, err
	}

	tsHash, viteHash := scaffold.Hashes(cfg)
	if p, err := s.project.Ensure(s.cfg.PackageName(), s.cfg.ProjectRoot, "react"); err == nil {
		p.TsconfigHash = tsHash
		p.ViteConfigHash = viteHash
		_ = s.project.Save(p)
	}

	s.record("generate", started, 0, len(stale), 0)
	return stale, nil
}

// Check runs the typecheck fix loop and, when build is set, `npm run build`.
// A stored npm token (secret "npm/<project>/token") is passed to the build
// as NPM_TOKEN for registries that need auth during install-on-build.
func (s *Service) Check(ctx context.Context, build bool) (*typecheck.LoopResult, error) {
	started := time.Now()

	spinner := terminal.NewSpinner("Typechecking...")
	spinner.Start()
	result, err := typecheck.FixLoop(ctx, s.cfg.ProjectRoot)
	spinner.Stop()
	if err != nil {
		return nil, err
	}

	if build && result.Clean() {
		var extraEnv []string
		tokenKey := secrets.SecretKey("npm", s.cfg.PackageName(), "token")
		if token, err := s.secrets.Get(tokenKey); err == nil && token != "" {
			extraEnv = append(extraEnv, "NPM_TOKEN="+token)
		}

		spinner = terminal.NewSpinner("Building...")
		spinner.Start()
		buildErr := typecheck.RunBuild(ctx, s.cfg.ProjectRoot, extraEnv)
		spinner.Stop()
		if buildErr != nil {
			return result, buildErr
		}
	}

	s.record("check", started, 0, result.FilesTouched, 0)
	return result, nil
}

// Watch blocks, re-running a fix pass and an audit whenever source files
// change. onPass receives each audit report for display.
func (s *Service) Watch(ctx context.Context, onPass func(fix *project.Result, report *audit.Report)) error {
	w, err := watch.New(s.cfg.SrcDir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.cfg.SrcDir, err)
	}
	defer w.Close()

	return w.Run(ctx, func(paths []string) {
		fixResult, err := s.Fix(FixOpts{})
		if err != nil {
			terminal.Error(fmt.Sprintf("fix pass failed: %v", err))
			return
		}
		report, err := s.Audit()
		if err != nil {
			terminal.Error(fmt.Sprintf("audit failed: %v", err))
			return
		}
		onPass(fixResult, report)
	})
}

// Info summarizes the project for `webmend info`.
type Info struct {
	Root        string
	PackageName string
	SourceFiles int
	HasVite     bool
	HasConfig   bool // webmend.json present
	Drift       []string
	LastScore   *storage.DailyScore
}

// Inspect gathers the info summary.
func (s *Service) Inspect() (*Info, error) {
	files, err := s.sources()
	if err != nil {
		return nil, err
	}

	info := &Info{
		Root:        s.cfg.ProjectRoot,
		PackageName: s.cfg.PackageName(),
		SourceFiles: len(files),
		HasVite:     s.cfg.HasDependency("vite"),
	}

	if cfg, err := scaffold.Load(s.cfg.ProjectRoot); err == nil {
		info.HasConfig = true
		info.Drift = scaffold.Drift(s.cfg.ProjectRoot, cfg)
	}
	info.LastScore, _ = s.scores.Today()
	return info, nil
}
