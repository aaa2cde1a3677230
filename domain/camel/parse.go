package camel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseResult is the outcome of reading a hand list.
type ParseResult struct {
	Hands []Hand
	// Lenient lists the 1-based line numbers whose bid could not be read
	// and was taken as 0.
	Lenient []int
}

// Parse reads one hand per line in the form "<5 cards> <bid>".
// Blank lines are skipped. A missing separator or an invalid card is an
// error; an unreadable bid counts as 0 and is reported in Lenient.
func Parse(r io.Reader) (ParseResult, error) {
	var res ParseResult
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		cards, bidText, ok := strings.Cut(text, " ")
		if !ok {
			return ParseResult{}, fmt.Errorf("line %d: %w: missing bid separator in %q", line, ErrMalformedLine, text)
		}
		bid, err := strconv.ParseInt(strings.TrimSpace(bidText), 10, 64)
		if err != nil || bid < 0 {
			bid = 0
			res.Lenient = append(res.Lenient, line)
		}
		h, err := NewHand(cards, bid)
		if err != nil {
			return ParseResult{}, fmt.Errorf("line %d: %w", line, err)
		}
		res.Hands = append(res.Hands, h)
	}
	if err := sc.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("reading hands: %w", err)
	}
	return res, nil
}

// ParseFile opens path and parses the hands it contains.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, err
	}
	defer f.Close()
	return Parse(f)
}
