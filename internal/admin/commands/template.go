package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/udisondev/itemforge/internal/constants"
	"github.com/udisondev/itemforge/internal/model"
)

func parseEntry(arg string) (int32, error) {
	v, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid entry %q: %w", arg, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("entry must be positive, got %d", v)
	}
	return int32(v), nil
}

// lookupTemplate loads entry from the generated or base templates, depending on its range.
func lookupTemplate(ctx context.Context, base BaseTemplates, custom CustomTemplates, start, entry int32) (*model.ItemTemplate, bool, error) {
	if constants.IsCustomEntry(entry, start) {
		return custom.GetCustom(ctx, entry)
	}
	tmpl, err := base.GetBase(ctx, entry)
	return tmpl, false, err
}

func writeTemplate(w io.Writer, tmpl *model.ItemTemplate, perfect bool) {
	fmt.Fprintf(w, "=== Item: %s ===\n", tmpl.Name)
	if tmpl.BaseEntry != 0 {
		fmt.Fprintf(w, "Entry: %d, Base: %d\n", tmpl.Entry, tmpl.BaseEntry)
	} else {
		fmt.Fprintf(w, "Entry: %d\n", tmpl.Entry)
	}
	fmt.Fprintf(w, "Class: %s/%s, Quality: %s, ItemLevel: %d\n",
		tmpl.Class, tmpl.Subclass.Name(tmpl.Class), tmpl.Quality, tmpl.ItemLevel)
	if perfect {
		fmt.Fprintln(w, "Perfect: yes")
	}
	fmt.Fprintf(w, "Stats (%d/%d):\n", tmpl.StatsCount, model.MaxItemStats)
	for _, slot := range tmpl.Stats {
		if slot.Value == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s +%d\n", slot.Type.HumanName(), slot.Value)
	}
}
