// Package aggregate turns keyword exports into per-source record lists.
package aggregate

import (
	"errors"

	"go.uber.org/zap"

	"keyword-dashboard/internal/config"
	"keyword-dashboard/internal/domain"
	"keyword-dashboard/internal/locate"
	"keyword-dashboard/internal/tabular"
)

type Aggregator struct {
	cfg    config.Config
	term   tabular.Field
	volume tabular.Field
	log    *zap.Logger
}

// New expects cfg to have gone through config.NormalizeAndValidate.
func New(cfg config.Config, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{
		cfg:    cfg,
		term:   tabular.Field{Name: "term", Aliases: cfg.Columns.Term},
		volume: tabular.Field{Name: "volume", Aliases: cfg.Columns.Volume},
		log:    log.Named("aggregate"),
	}
}

// Run loads every configured source in order. Read problems are logged and
// leave the affected source (or category) empty.
func (a *Aggregator) Run() *Result {
	res := &Result{}
	for _, src := range a.cfg.DomainSources() {
		var recs []domain.KeywordRecord
		if src.IsSelf() {
			recs = a.loadSelf(src)
		} else {
			recs = a.loadCompetitor(src)
		}
		a.log.Info("loaded source",
			zap.String("source", src.ID),
			zap.String("name", src.Name),
			zap.Int("records", len(recs)),
		)
		res.Sources = append(res.Sources, SourceResult{Source: src, Records: recs})
	}
	return res
}

func (a *Aggregator) loadSelf(src domain.Source) []domain.KeywordRecord {
	var out []domain.KeywordRecord
	for _, cat := range a.cfg.DomainCategories() {
		dir, name := a.cfg.CategoryPath(cat)
		path, found := locate.Resolve(dir, name)
		if !found {
			a.log.Debug("category file not found",
				zap.String("source", src.ID),
				zap.String("category", cat.Name),
				zap.String("path", path),
			)
			continue
		}

		tbl := a.read(src, path)
		before := len(out)
		out = a.appendRecords(out, tbl, src, cat)
		a.log.Debug("loaded category",
			zap.String("category", cat.Name),
			zap.Int("records", len(out)-before),
		)
	}
	return out
}

func (a *Aggregator) loadCompetitor(src domain.Source) []domain.KeywordRecord {
	path, _ := locate.ResolvePath(a.cfg.BaseDir, src.Path)
	return a.appendRecords(nil, a.read(src, path), src, domain.Category{})
}

func (a *Aggregator) read(src domain.Source, path string) *tabular.Table {
	tbl, err := tabular.Read(path)
	if err != nil {
		msg := "read failed"
		switch {
		case errors.Is(err, tabular.ErrNotFound):
			msg = "source file not found"
		case errors.Is(err, tabular.ErrFormat):
			msg = "source file format not recognized"
		}
		a.log.Warn(msg, zap.String("source", src.ID), zap.String("path", path), zap.Error(err))
	}
	return tbl
}

func (a *Aggregator) appendRecords(out []domain.KeywordRecord, tbl *tabular.Table, src domain.Source, cat domain.Category) []domain.KeywordRecord {
	if tbl.Len() == 0 {
		return out
	}
	termCol, hasTerm := tbl.Resolve(a.term)
	volCol, hasVol := tbl.Resolve(a.volume)
	if !hasTerm || !hasVol {
		a.log.Warn("missing expected columns",
			zap.String("source", src.ID),
			zap.String("path", tbl.Path),
			zap.Bool("term", hasTerm),
			zap.Bool("volume", hasVol),
			zap.Strings("header", tbl.Header),
		)
	}

	for _, row := range tbl.Rows() {
		rec := domain.KeywordRecord{SourceID: src.ID, Category: cat.Name, CategoryIcon: cat.Icon}
		if hasTerm {
			rec.Term = cleanTerm(row.Get(termCol))
		}
		if hasVol {
			rec.Volume = ParseVolume(row.Get(volCol))
		}
		out = append(out, rec)
	}
	return out
}
