package extractor

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/use-agent/codaddy/models"
)

// NewMarkdownConverter creates a reusable, goroutine-safe Converter for the
// markup-bearing problem fields. Statements occasionally carry tables
// (e.g. interaction protocols), so the table plugin is enabled.
func NewMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(
				table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal),
			),
		),
	)
}

// ToMarkdown returns a copy of p whose statement, specifications and note
// are converted from HTML to Markdown. Relative links and images are
// resolved against domain. Limits, title and samples are plain text
// already and are copied unchanged.
func ToMarkdown(conv *converter.Converter, p *models.Problem, domain string) (*models.Problem, error) {
	out := *p

	fields := []*string{
		&out.ProblemStatement,
		&out.InputSpecification,
		&out.OutputSpecification,
		&out.Note,
	}
	for _, f := range fields {
		if *f == "" {
			continue
		}
		md, err := conv.ConvertString(*f, converter.WithDomain(domain))
		if err != nil {
			return nil, models.NewScrapeError(
				models.ErrCodeInternal,
				"markdown conversion failed",
				err,
			)
		}
		*f = md
	}
	return &out, nil
}
