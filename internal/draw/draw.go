package draw

import (
	"fmt"
	"strconv"
)

const (
	MainCount  = 5
	BonusCount = 2
	// Columns is the width of every CSV row, header included.
	Columns = 1 + MainCount + BonusCount
)

// Draw represents one lottery result
type Draw struct {
	Date  string             `json:"date"`
	Main  [MainCount]string  `json:"main"`
	Bonus [BonusCount]string `json:"bonus"`
}

// New builds a Draw from captured main and bonus numbers.
// It returns false when fewer than MainCount main numbers were captured.
// Extra numbers are dropped and missing bonus numbers are left empty.
func New(label string, main, bonus []string) (Draw, bool) {
	if len(main) < MainCount {
		return Draw{}, false
	}

	d := Draw{Date: label}
	copy(d.Main[:], main)
	copy(d.Bonus[:], bonus)
	return d, true
}

// Header returns the CSV column names
func Header() []string {
	return []string{"Date", "Ball 1", "Ball 2", "Ball 3", "Ball 4", "Ball 5", "Lucky Star 1", "Lucky Star 2"}
}

// Row returns the draw as CSV fields: date, main numbers, bonus numbers
func (d Draw) Row() []string {
	row := make([]string, 0, Columns)
	row = append(row, d.Date)
	row = append(row, d.Main[:]...)
	row = append(row, d.Bonus[:]...)
	return row
}

// FromRow is the inverse of Row
func FromRow(row []string) (Draw, error) {
	if len(row) != Columns {
		return Draw{}, fmt.Errorf("expected %d fields, got %d", Columns, len(row))
	}

	var d Draw
	d.Date = row[0]
	copy(d.Main[:], row[1:1+MainCount])
	copy(d.Bonus[:], row[1+MainCount:])
	return d, nil
}

// MainInts returns the non-empty main numbers as integers
func (d Draw) MainInts() ([]int, error) {
	return toInts(d.Main[:])
}

// BonusInts returns the non-empty bonus numbers as integers
func (d Draw) BonusInts() ([]int, error) {
	return toInts(d.Bonus[:])
}

func toInts(values []string) ([]int, error) {
	nums := make([]int, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing number %q: %w", v, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
