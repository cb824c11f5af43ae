package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/levelcheck/internal/model"
)

// ParseLine parses one line of whitespace-separated tokens into a Report.
// Tokens that do not parse as non-negative integers are dropped, not
// rejected; the surviving levels keep their original order. ParseLine
// never returns an error by design — input noise is not a failure mode
// for this tool.
func ParseLine(line string) model.Report {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return model.Report{}
	}

	levels := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			// Malformed or negative token: skip it.
			continue
		}
		levels = append(levels, n)
	}

	return model.NewReport(levels)
}

// ParseLines parses each line into a Report, preserving input order.
// Every line yields exactly one Report, including lines with no valid
// tokens (which yield empty reports).
func ParseLines(lines []string) []model.Report {
	reports := make([]model.Report, 0, len(lines))
	for _, line := range lines {
		reports = append(reports, ParseLine(line))
	}
	return reports
}

// ParseReader reads r to the end, splits it on newlines, and parses each
// line into a Report. The whole input is held in memory; this tool targets
// short report lists, not streaming workloads.
//
// The only possible error is a read error from the underlying source;
// the caller is responsible for surfacing it to the user.
func ParseReader(r io.Reader) ([]model.Report, error) {
	var reports []model.Report

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		reports = append(reports, ParseLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
