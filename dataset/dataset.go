// Package dataset reads training data in the sparse libsvm line format:
//
//	<label> <index>:<value> <index>:<value> ...  # optional comment
//
// Labels are +1 or -1; indices are 1-based and strictly ascending within a
// line. The parser produces vector.FeatureVector values ready for Gram
// construction.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/svmkit/vector"
)

// Sentinel errors for line parsing.
var (
	// ErrMissingLabel indicates a line that does not start with a label
	// (it starts with an index:value pair). Empty lines are not an error.
	ErrMissingLabel = errors.New("dataset: line must start with a label")

	// ErrBadLabel indicates a label other than +1 or -1.
	ErrBadLabel = errors.New("dataset: label must be -1 or +1")

	// ErrBadFeaturePair indicates a token that is not <index>:<value>.
	ErrBadFeaturePair = errors.New("dataset: cannot parse feature pair")

	// ErrBadFeatureIndex indicates a feature index < 1.
	ErrBadFeatureIndex = errors.New("dataset: feature index must be >= 1")

	// ErrFeatureOrder indicates indices that are not strictly increasing.
	ErrFeatureOrder = errors.New("dataset: features must be in increasing order")
)

// ParseLine parses one data line into a feature vector with factor 1.
//
// Steps:
//  1. Cut the comment tail at the first '#'.
//  2. Split on whitespace; the first token must be a bare ±1 label.
//  3. Parse each remaining token as index:value, enforcing 1-based
//     strictly ascending indices.
//
// Blank and comment-only lines return (nil, nil) so loaders can skip them.
func ParseLine(line string) (*vector.FeatureVector, error) {
	// 1) Comments run to end of line.
	if cut := strings.IndexByte(line, '#'); cut >= 0 {
		line = line[:cut]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	// 2) The label token must not look like a feature pair.
	if strings.ContainsRune(fields[0], ':') {
		return nil, ErrMissingLabel
	}
	labelVal, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadLabel, fields[0])
	}
	var label int8
	switch labelVal {
	case 1:
		label = 1
	case -1:
		label = -1
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadLabel, labelVal)
	}

	// 3) Feature pairs.
	features := make([]vector.Feature, 0, len(fields)-1)
	prev := 0
	for _, tok := range fields[1:] {
		idxStr, valStr, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadFeaturePair, tok)
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFeaturePair, tok)
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFeaturePair, tok)
		}
		if idx < 1 {
			return nil, fmt.Errorf("%w: %d", ErrBadFeatureIndex, idx)
		}
		if idx <= prev {
			return nil, fmt.Errorf("%w: %d after %d", ErrFeatureOrder, idx, prev)
		}
		prev = idx
		features = append(features, vector.Feature{Index: idx, Value: val})
	}

	return vector.New(features, label, 1)
}

// Load reads every data line from r, skipping blanks and comment-only
// lines. Errors carry the 1-based line number.
func Load(r io.Reader) ([]*vector.FeatureVector, error) {
	var vecs []*vector.FeatureVector
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		v, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", lineNo, err)
		}
		if v != nil {
			vecs = append(vecs, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: reading input: %w", err)
	}

	return vecs, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) ([]*vector.FeatureVector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Load(f)
}
