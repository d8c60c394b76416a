// Package ml holds dataset utilities for training classifiers on image
// descriptors.
package ml

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

var (
	// ErrLengthMismatch is returned when data and labels differ in length.
	ErrLengthMismatch = errors.New("ml: data and labels differ in length")

	// ErrInvalidRatio is returned for a test ratio outside [0, 1].
	ErrInvalidRatio = errors.New("ml: test ratio out of range")
)

// Split is a labeled dataset divided into training and test parts.
type Split[D, L any] struct {
	TrainData   []D
	TrainLabels []L
	TestData    []D
	TestLabels  []L
}

func checkRatio(ratio float64) error {
	if !(ratio >= 0 && ratio <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	return nil
}

// SplitTrainTest puts the first int(len(input)*testRatio) items in test and
// the rest in train. The input slice is not modified.
func SplitTrainTest[T any](input []T, testRatio float64) (train, test []T, err error) {
	if err := checkRatio(testRatio); err != nil {
		return nil, nil, err
	}
	n := int(float64(len(input)) * testRatio)
	test = append([]T(nil), input[:n]...)
	train = append([]T(nil), input[n:]...)
	return train, test, nil
}

// SplitTrainTestLabeled divides data and labels, keeping pairs together.
// int(len(data)*testRatio) pairs go to the test part. With a nil rng the
// last pairs are the test pairs; otherwise membership is shuffled with rng
// while the relative order inside each part is preserved.
func SplitTrainTestLabeled[D, L any](data []D, labels []L, testRatio float64, rng *rand.Rand) (Split[D, L], error) {
	var s Split[D, L]
	if len(data) != len(labels) {
		return s, fmt.Errorf("%w: %d data, %d labels", ErrLengthMismatch, len(data), len(labels))
	}
	if err := checkRatio(testRatio); err != nil {
		return s, err
	}

	testSize := int(float64(len(data)) * testRatio)
	trainSize := len(data) - testSize
	isTest := lo.Times(len(data), func(i int) bool { return i >= trainSize })
	if rng != nil {
		rng.Shuffle(len(isTest), func(i, j int) { isTest[i], isTest[j] = isTest[j], isTest[i] })
	}

	s.TrainData = make([]D, 0, trainSize)
	s.TrainLabels = make([]L, 0, trainSize)
	s.TestData = make([]D, 0, testSize)
	s.TestLabels = make([]L, 0, testSize)
	for i, test := range isTest {
		if test {
			s.TestData = append(s.TestData, data[i])
			s.TestLabels = append(s.TestLabels, labels[i])
		} else {
			s.TrainData = append(s.TrainData, data[i])
			s.TrainLabels = append(s.TrainLabels, labels[i])
		}
	}
	return s, nil
}

// groupByLabel returns the distinct labels in first-seen order and the data
// of each label in input order.
func groupByLabel[D any, L comparable](data []D, labels []L) ([]L, map[L][]D) {
	order := lo.Uniq(labels)
	idx := lo.GroupBy(lo.Range(len(data)), func(i int) L { return labels[i] })
	groups := lo.MapValues(idx, func(is []int, _ L) []D {
		return lo.Map(is, func(i int, _ int) D { return data[i] })
	})
	return order, groups
}

// SplitTrainTestBalanced divides every label separately so train and test
// keep the label proportions of the input: for each label, the first
// int(count*testRatio) items go to test. Labels appear in first-seen order.
func SplitTrainTestBalanced[D any, L comparable](data []D, labels []L, testRatio float64) (Split[D, L], error) {
	var s Split[D, L]
	if len(data) != len(labels) {
		return s, fmt.Errorf("%w: %d data, %d labels", ErrLengthMismatch, len(data), len(labels))
	}
	if err := checkRatio(testRatio); err != nil {
		return s, err
	}

	order, groups := groupByLabel(data, labels)
	for _, label := range order {
		items := groups[label]
		n := int(float64(len(items)) * testRatio)
		s.TestData = append(s.TestData, items[:n]...)
		s.TestLabels = append(s.TestLabels, lo.Times(n, func(int) L { return label })...)
		s.TrainData = append(s.TrainData, items[n:]...)
		s.TrainLabels = append(s.TrainLabels, lo.Times(len(items)-n, func(int) L { return label })...)
	}
	return s, nil
}

// SplitKSetBalanced divides the data of every label into k groups of
// count/k items, the last group also taking the remainder. It is meant for
// k-fold cross validation. k < 2 returns an empty map.
func SplitKSetBalanced[D any, L comparable](data []D, labels []L, k int) (map[L][][]D, error) {
	if len(data) != len(labels) {
		return nil, fmt.Errorf("%w: %d data, %d labels", ErrLengthMismatch, len(data), len(labels))
	}
	out := make(map[L][][]D)
	if k < 2 {
		return out, nil
	}

	_, groups := groupByLabel(data, labels)
	for label, items := range groups {
		size := len(items) / k
		sets := make([][]D, k)
		for i := range k {
			start := i * size
			end := start + size
			if i == k-1 {
				end = len(items)
			}
			sets[i] = items[start:end:end]
		}
		out[label] = sets
	}
	return out, nil
}
