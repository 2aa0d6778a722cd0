// Package report renders aggregated keywords into a single self-contained
// HTML dashboard and writes it to disk.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"
	"time"

	"go.uber.org/zap"

	"keyword-dashboard/internal/aggregate"
	"keyword-dashboard/internal/domain"
)

// MaxTableRows caps each source's table after sorting by volume.
const MaxTableRows = 500

// OverviewID is the section id of the summary page.
const OverviewID = "overview"

//go:embed templates/*.tmpl
var templateFS embed.FS

type Options struct {
	Title       string
	RunID       string
	GeneratedAt time.Time
}

type Renderer struct {
	opts Options
	tmpl *template.Template
	log  *zap.Logger
}

func NewRenderer(opts Options, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{opts: opts, tmpl: tmpl, log: log.Named("report")}, nil
}

type pageView struct {
	Title        string
	GeneratedAt  string
	RunID        string
	TotalRecords string
	TotalVolume  string
	SourceCount  int

	Self          *sectionView
	Competitors   []*sectionView
	Sections      []*sectionView
	TopCategories []categoryView
}

type sectionView struct {
	ID         string
	Name       string
	Color      string
	Icon       string
	IsSelf     bool
	Count      int
	CountText  string
	VolumeText string
	Rows       []rowView
}

type rowView struct {
	Rank         int
	Term         string
	Volume       int64
	VolumeText   string
	Category     string
	CategoryIcon string
}

type categoryView struct {
	Name       string
	Icon       string
	CountText  string
	VolumeText string
}

func (r *Renderer) Render(w io.Writer, res *aggregate.Result) error {
	view := r.buildView(res)
	if err := r.tmpl.ExecuteTemplate(w, "dashboard", view); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

func (r *Renderer) RenderBytes(res *aggregate.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) buildView(res *aggregate.Result) pageView {
	v := pageView{
		Title:        r.opts.Title,
		GeneratedAt:  r.opts.GeneratedAt.Format("2006-01-02 15:04"),
		RunID:        r.opts.RunID,
		TotalRecords: FormatCount(int64(res.TotalRecords())),
		TotalVolume:  FormatVolume(res.TotalVolume()),
		SourceCount:  len(res.Sources),
	}

	for _, s := range res.Sources {
		sec := buildSection(s)
		v.Sections = append(v.Sections, sec)
		if sec.IsSelf && v.Self == nil {
			v.Self = sec
		} else {
			v.Competitors = append(v.Competitors, sec)
		}
		if len(s.Records) > MaxTableRows {
			r.log.Debug("table truncated",
				zap.String("source", s.Source.ID),
				zap.Int("records", len(s.Records)),
				zap.Int("shown", MaxTableRows),
			)
		}
	}

	if self, ok := res.Self(); ok {
		ranked := aggregate.RankCategories(aggregate.CategoryTotals(self.Records), aggregate.SummaryCategoryLimit)
		for _, c := range ranked {
			v.TopCategories = append(v.TopCategories, categoryView{
				Name:       c.Name,
				Icon:       c.Icon,
				CountText:  FormatCount(int64(c.Count)),
				VolumeText: FormatVolume(c.Volume),
			})
		}
	}
	return v
}

func buildSection(s aggregate.SourceResult) *sectionView {
	sec := &sectionView{
		ID:         s.Source.ID,
		Name:       s.Source.Name,
		Color:      s.Source.Color,
		Icon:       s.Source.Icon,
		IsSelf:     s.Source.IsSelf(),
		Count:      s.Count(),
		CountText:  FormatCount(int64(s.Count())),
		VolumeText: FormatVolume(s.Volume()),
	}
	for i, rec := range TopByVolume(s.Records, MaxTableRows) {
		sec.Rows = append(sec.Rows, rowView{
			Rank:         i + 1,
			Term:         rec.Term,
			Volume:       rec.Volume,
			VolumeText:   FormatCount(rec.Volume),
			Category:     rec.Category,
			CategoryIcon: rec.CategoryIcon,
		})
	}
	return sec
}

// TopByVolume returns up to n records by descending volume; equal volumes
// keep their input order. records is left untouched.
func TopByVolume(records []domain.KeywordRecord, n int) []domain.KeywordRecord {
	out := append([]domain.KeywordRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Volume > out[j].Volume })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
