package ingest

import (
	"strconv"
	"strings"

	"oem-insights/models"
	"oem-insights/utils"
)

// fieldCount is the minimum number of columns a line must split into to be
// kept. The source schema is:
// sr_no, oem_type, oem_name, city, state, phone, email, adoption_status, notes
const fieldCount = 9

// Parser turns raw delimited text into Company records. Ingestion is
// deliberately lenient: short lines are dropped silently and unparsable
// sequence numbers default to zero, so one bad row never poisons a snapshot.
type Parser struct {
	logger *utils.Logger
}

// NewParser creates a Parser with the given logger.
func NewParser(logger *utils.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse converts one CSV document into records. The first line is a header
// and is discarded; blank lines are skipped.
func (p *Parser) Parse(raw string) []*models.Company {
	lines := strings.Split(raw, "\n")
	if len(lines) <= 1 {
		return nil
	}

	companies := make([]*models.Company, 0, len(lines)-1)
	dropped := 0

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		values := splitLine(line)
		if len(values) < fieldCount {
			dropped++
			continue
		}

		seqNo, err := strconv.Atoi(values[0])
		if err != nil {
			seqNo = 0
		}

		companies = append(companies, &models.Company{
			SeqNo:          seqNo,
			Equipment:      values[1],
			Name:           values[2],
			City:           values[3],
			Region:         values[4],
			Phone:          values[5],
			Email:          values[6],
			AdoptionStatus: values[7],
			Notes:          values[8],
		})
	}

	if dropped > 0 {
		p.logger.Debug("[parser] Dropped %d short lines", dropped)
	}
	return companies
}

// splitLine splits a CSV line on commas, treating double quotes as toggles
// for an in-quotes span so quoted commas survive. Fields are trimmed. The
// quote characters themselves are not kept.
func splitLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	result = append(result, strings.TrimSpace(current.String()))
	return result
}
