package ui

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const countMessageID = "ComboBoxCount"

var countBundle = newCountBundle()

func newCountBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.MustAddMessages(language.English, &i18n.Message{
		ID:    countMessageID,
		One:   "{{.Count}} item found",
		Other: "{{.Count}} items found",
	})
	bundle.MustAddMessages(language.German, &i18n.Message{
		ID:    countMessageID,
		One:   "{{.Count}} Eintrag gefunden",
		Other: "{{.Count}} Einträge gefunden",
	})
	bundle.MustAddMessages(language.French, &i18n.Message{
		ID:    countMessageID,
		One:   "{{.Count}} élément trouvé",
		Other: "{{.Count}} éléments trouvés",
	})
	return bundle
}

// countLabel renders the "N items found" line for locale.
func countLabel(locale string, n int) string {
	localizer := i18n.NewLocalizer(countBundle, strings.TrimSpace(locale), language.English.String())
	label, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    countMessageID,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": humanize.Comma(int64(n))},
	})
	if err != nil {
		return strconv.Itoa(n) + " found"
	}
	return label
}
