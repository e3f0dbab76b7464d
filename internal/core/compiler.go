package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agenthands/gcsynth/internal/core/classify"
	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/core/ports"
	"github.com/agenthands/gcsynth/internal/core/synthesis"
	"github.com/agenthands/gcsynth/internal/metrics"
	"github.com/agenthands/gcsynth/internal/store"
)

type Options struct {
	// Strict fails the compile on any diagnostic, warnings included.
	Strict bool
	// Provenance records back-links from generated entities to their sources.
	Provenance bool
	// Persist saves every freshly generated network through the store.
	Persist bool
}

// Compiler turns a module definition and everything it instantiates into
// reaction networks, one per definition.
type Compiler struct {
	Store   store.NetworkStore
	Metrics *metrics.Registry
	Log     logrus.FieldLogger
	Options Options

	RunIDGenerator func() string
}

func NewCompiler(st store.NetworkStore, reg *metrics.Registry, log logrus.FieldLogger, opts Options) *Compiler {
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Compiler{
		Store:   st,
		Metrics: reg,
		Log:     log,
		Options: opts,
		RunIDGenerator: func() string {
			return uuid.New().String()
		},
	}
}

// Compilation is the outcome of one compile run.
type Compilation struct {
	RunID       string                                 `json:"run_id"`
	Root        *model.ReactionNetworkModel            `json:"root"`
	Models      map[string]*model.ReactionNetworkModel `json:"models"`
	Generated   []string                               `json:"generated"`
	Reused      []string                               `json:"reused"`
	Diagnostics []model.Diagnostic                     `json:"diagnostics"`
}

// Compile builds the network of rootID and of every module it reaches. Each
// submodule definition is resolved once per run: from this run's results,
// else from the store, else by compiling it.
func (c *Compiler) Compile(ctx context.Context, doc *model.Document, rootID string) (*Compilation, error) {
	start := time.Now()
	runID := c.RunIDGenerator()
	log := c.Log.WithFields(logrus.Fields{"run_id": runID, "root": rootID})

	p := &pass{
		Compiler: c,
		ctx:      ctx,
		log:      log,
		catalog:  model.NewCatalog(doc),
		memo:     make(map[string]*model.ReactionNetworkModel),
		onChain:  make(map[string]bool),
		result: &Compilation{
			RunID:       runID,
			Models:      make(map[string]*model.ReactionNetworkModel),
			Generated:   []string{},
			Reused:      []string{},
			Diagnostics: []model.Diagnostic{},
		},
	}

	root, err := p.compileRoot(rootID)
	if err != nil {
		c.Metrics.RecordCompile("error", time.Since(start))
		log.WithError(err).Error("compile failed")
		return nil, err
	}
	p.result.Root = root

	c.Metrics.RecordCompile("success", time.Since(start))
	log.WithFields(logrus.Fields{
		"generated":   len(p.result.Generated),
		"reused":      len(p.result.Reused),
		"diagnostics": len(p.result.Diagnostics),
	}).Info("compile finished")
	return p.result, nil
}

// pass holds the state of one compile run.
type pass struct {
	*Compiler
	ctx     context.Context
	log     logrus.FieldLogger
	catalog *model.Catalog
	memo    map[string]*model.ReactionNetworkModel
	chain   []string
	onChain map[string]bool
	result  *Compilation
}

func (p *pass) compileRoot(rootID string) (*model.ReactionNetworkModel, error) {
	md, ok := p.catalog.Module(rootID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, rootID)
	}
	return p.compileModule(md)
}

func (p *pass) chainCopy() []string {
	return append([]string(nil), p.chain...)
}

func (p *pass) compileModule(md *model.ModuleDefinition) (*model.ReactionNetworkModel, error) {
	p.chain = append(p.chain, md.ID)
	p.onChain[md.ID] = true
	defer func() {
		p.chain = p.chain[:len(p.chain)-1]
		delete(p.onChain, md.ID)
	}()

	log := p.log.WithField("module", md.ID)
	scope := p.catalog.Scope(md)

	cls := classify.ClassifyScope(scope)
	for _, kind := range []classify.Kind{
		classify.KindDegradation,
		classify.KindComplexFormation,
		classify.KindProduction,
		classify.KindActivation,
		classify.KindRepression,
		classify.KindUnclassified,
	} {
		p.Metrics.RecordClassified(string(kind), cls.Count(kind))
	}

	b := synthesis.NewBuilder(scope, p.Options.Provenance)
	b.Synthesize(cls)

	resolver := ports.NewResolver(scope)
	for i := range md.Submodules {
		sub := &md.Submodules[i]
		if err := p.wireSubmodule(b, resolver, sub); err != nil {
			return nil, err
		}
	}

	m := b.Model()
	for _, r := range m.Reactions {
		p.Metrics.RecordReaction(string(r.Kind))
	}

	diags := b.Diagnostics()
	for _, d := range diags {
		p.Metrics.RecordDiagnostic(string(d.Severity), d.Code)
		entry := log.WithFields(logrus.Fields{"code": d.Code, "element": d.Element})
		if d.Severity == model.SeverityError {
			entry.Error(d.Message)
		} else {
			entry.Warn(d.Message)
		}
	}
	p.result.Diagnostics = append(p.result.Diagnostics, diags...)
	if p.Options.Strict && len(diags) > 0 {
		return nil, &ModuleError{
			Chain: p.chainCopy(),
			Err:   fmt.Errorf("%w: %s", ErrStrictViolation, diags[0].Message),
		}
	}

	if p.Options.Persist && p.Store != nil {
		err := p.Store.Save(p.ctx, m)
		p.Metrics.RecordStoreOperation("save", err)
		if err != nil {
			return nil, &ModuleError{Chain: p.chainCopy(), Err: fmt.Errorf("failed to save network: %w", err)}
		}
	}

	p.memo[md.ID] = m
	p.result.Models[md.ID] = m
	p.result.Generated = append(p.result.Generated, md.ID)
	p.Metrics.RecordModule("generated")
	log.WithFields(logrus.Fields{
		"species":   len(m.Species),
		"reactions": len(m.Reactions),
		"ports":     len(m.Ports),
	}).Debug("module generated")
	return m, nil
}

func (p *pass) wireSubmodule(b *synthesis.Builder, resolver *ports.Resolver, sub *model.Submodule) error {
	fail := func(err error) error {
		var me *ModuleError
		if errors.As(err, &me) {
			return err
		}
		return &ModuleError{Chain: p.chainCopy(), Submodule: sub.ID, Definition: sub.Definition, Err: err}
	}

	subModel, err := p.resolveDefinition(sub.Definition)
	if err != nil {
		return fail(err)
	}

	var child *model.Scope
	if childMD, ok := p.catalog.Module(sub.Definition); ok {
		child = p.catalog.Scope(childMD)
	}

	b.AddSubmodel(sub.ID, sub.Definition)
	res, err := resolver.Resolve(sub, child, subModel)
	if err != nil {
		return fail(err)
	}
	for _, w := range res.Wirings {
		b.EnsureSpecies(w.Link.Species)
		b.AddLink(w.Link, w.Mapping.ID)
		p.Metrics.RecordMapping(string(w.Link.Kind))
	}
	for range res.Skipped {
		p.Metrics.RecordMapping("skipped")
	}
	return nil
}

// resolveDefinition returns the network of a submodule definition: from this
// run, from the store, or by compiling it.
func (p *pass) resolveDefinition(id string) (*model.ReactionNetworkModel, error) {
	if p.onChain[id] {
		return nil, fmt.Errorf("%w: %s", ErrCyclicModule, id)
	}
	if m, ok := p.memo[id]; ok {
		return m, nil
	}

	if p.Store != nil {
		exists, err := p.Store.Exists(p.ctx, id)
		p.Metrics.RecordStoreOperation("exists", err)
		if err != nil {
			return nil, fmt.Errorf("failed to probe store: %w", err)
		}
		if exists {
			m, err := p.Store.Load(p.ctx, id)
			p.Metrics.RecordStoreOperation("load", err)
			if err != nil {
				return nil, fmt.Errorf("failed to load network: %w", err)
			}
			p.memo[id] = m
			p.result.Models[id] = m
			p.result.Reused = append(p.result.Reused, id)
			p.Metrics.RecordModule("reused")
			p.log.WithField("module", id).Debug("reusing stored network")
			return m, nil
		}
	}

	md, ok := p.catalog.Module(id)
	if !ok {
		return nil, ErrDanglingSubmodule
	}
	return p.compileModule(md)
}
