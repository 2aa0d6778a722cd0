package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"keyword-dashboard/internal/domain"
)

var (
	idPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	colorPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
)

var (
	defaultTermColumns   = []string{"キーワード", "keyword"}
	defaultVolumeColumns = []string{"月間検索数", "volume"}
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Err folds all validation errors into one error, nil when OK.
func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return errors.New("config validation failed:\n- " + strings.Join(v.Errors, "\n- "))
}

// NormalizeAndValidate returns a normalized copy of cfg along with any
// problems found. Defaults are filled for empty paths and column aliases.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.BaseDir = strings.TrimSpace(out.BaseDir)
	if out.BaseDir == "" {
		out.BaseDir = "."
	}
	out.Output = strings.TrimSpace(out.Output)
	if out.Output == "" {
		res.addErr("output is required")
	}
	if out.CategoryExt == "" {
		out.CategoryExt = ".csv"
	}

	out.Columns.Term = trimList(out.Columns.Term)
	if len(out.Columns.Term) == 0 {
		out.Columns.Term = append([]string(nil), defaultTermColumns...)
	}
	out.Columns.Volume = trimList(out.Columns.Volume)
	if len(out.Columns.Volume) == 0 {
		out.Columns.Volume = append([]string(nil), defaultVolumeColumns...)
	}

	// ---- sources ----

	out.Sources = append([]Source(nil), cfg.Sources...)
	if len(out.Sources) == 0 {
		res.addErr("sources must have at least 1 entry")
	}
	ids := map[string]bool{}
	selfCount := 0
	for i := range out.Sources {
		s := &out.Sources[i]
		s.ID = strings.TrimSpace(s.ID)
		s.Name = strings.TrimSpace(s.Name)
		s.Path = strings.TrimSpace(s.Path)
		s.Role = strings.ToLower(strings.TrimSpace(s.Role))

		switch {
		case s.ID == "":
			res.addErr("sources[%d].id is required", i)
		case !idPattern.MatchString(s.ID):
			res.addErr("sources[%d].id %q must be an ascii slug", i, s.ID)
		case ids[s.ID]:
			res.addErr("sources[%d].id %q is duplicated", i, s.ID)
		}
		ids[s.ID] = true

		if s.Name == "" {
			res.addErr("sources[%d].name is required", i)
		}
		if !colorPattern.MatchString(s.Color) {
			res.addErr("sources[%d].color %q must be a hex color like #667eea", i, s.Color)
		}

		switch domain.Role(s.Role) {
		case domain.RoleSelf:
			selfCount++
			if s.Path != "" {
				res.addWarn("sources[%d].path is ignored for the self source; keywords come from categories", i)
			}
		case domain.RoleCompetitor:
			if s.Path == "" {
				res.addErr("sources[%d].path is required for a competitor", i)
			}
		default:
			res.addErr("sources[%d].role must be self or competitor, got %q", i, s.Role)
		}
	}
	if selfCount > 1 {
		res.addErr("only one source may have role self, found %d", selfCount)
	}

	// ---- categories ----

	out.Categories = append([]Category(nil), cfg.Categories...)
	names := map[string]bool{}
	for i := range out.Categories {
		c := &out.Categories[i]
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			res.addErr("categories[%d].name is required", i)
			continue
		}
		if names[c.Name] {
			res.addWarn("categories[%d] %q is listed twice; its keywords will be counted twice", i, c.Name)
		}
		names[c.Name] = true
	}
	if selfCount == 1 && len(out.Categories) == 0 {
		res.addWarn("categories is empty; the self source will have no keywords")
	}
	if selfCount == 0 && len(out.Categories) > 0 {
		res.addWarn("categories are configured but no source has role self")
	}

	return out, res
}
