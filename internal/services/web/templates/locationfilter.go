package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LocationFilterValues carries optional preselected hierarchy values.
// The containers themselves are populated client-side; preselections are
// surfaced as data attributes for the filter scripts to pick up.
type LocationFilterValues struct {
	Country     string
	State       string
	Region      string
	City        string
	Translation string
}

// locationFilterSection describes one labeled filter row.
type locationFilterSection struct {
	label       string
	containerID string
	errorID     string
	selected    string
}

// LocationFilter renders the hierarchical location filter widget:
// Country (L0), State (L1), Region (L2), City, then Translation, each
// with a label, a client-populated container and an error placeholder.
// The section set and order never vary with the supplied values.
func LocationFilter(values LocationFilterValues) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sections := []locationFilterSection{
			{label: "Country", containerID: "l0-location-filter", errorID: "l0-filter-error", selected: values.Country},
			{label: "State", containerID: "l1-location-filter", errorID: "l1-filter-error", selected: values.State},
			{label: "Region", containerID: "l2-location-filter", errorID: "l2-filter-error", selected: values.Region},
			{label: "City", containerID: "city-location-filter", errorID: "city-filter-error", selected: values.City},
		}

		if _, err := io.WriteString(w, `<div id="location-filter">`); err != nil {
			return err
		}
		for _, section := range sections {
			if err := writeLocationFilterSection(w, section); err != nil {
				return err
			}
		}
		if err := writeTranslationSection(w, values.Translation); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func writeLocationFilterSection(w io.Writer, section locationFilterSection) error {
	selected := ""
	if section.selected != "" {
		selected = fmt.Sprintf(` data-selected="%s"`, templ.EscapeString(section.selected))
	}
	_, err := fmt.Fprintf(w,
		`<div class="location-filter-container">`+
			`<div class="location-filter-label">%s</div>`+
			`<div id="%s"%s></div>`+
			`<div id="%s" class="error-message"></div>`+
			`</div>`,
		templ.EscapeString(section.label), section.containerID, selected, section.errorID)
	return err
}

func writeTranslationSection(w io.Writer, translation string) error {
	value := ""
	if translation != "" {
		value = fmt.Sprintf(` value="%s"`, templ.EscapeString(translation))
	}
	_, err := fmt.Fprintf(w,
		`<div class="location-filter-container">`+
			`<div class="location-filter-label">Translation</div>`+
			`<div><input type="text" id="translation-input" placeholder="Enter translation…"%s></div>`+
			`<div id="translation-error" class="error-message"></div>`+
			`</div>`,
		value)
	return err
}
