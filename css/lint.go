package css

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Lint parses data and returns every selector violation found, combined into
// a single error (nil when the stylesheet is clean). The optional source name
// prefixes each violation.
func (p *Parser) Lint(data []byte, source ...string) error {
	sheet := p.Parse(data, source...)

	var err error
	for _, w := range sheet.Warnings {
		if len(source) > 0 && source[0] != "" {
			err = multierr.Append(err, fmt.Errorf("%s: %s", source[0], w))
			continue
		}
		err = multierr.Append(err, errors.New(w))
	}
	return err
}
