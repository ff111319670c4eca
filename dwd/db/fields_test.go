package db

import "testing"

func TestFormatTimestamp(t *testing.T) {
	type testCase struct {
		input    string
		expected string
		fails    bool
	}

	cases := []testCase{
		{"1893010101", "1893-01-01 01:00:00", false},
		{"1995090123", "1995-09-01 23:00:00", false},
		// No calendar validation
		{"2023023099", "2023-02-30 99:00:00", false},
		{"189301010", "", true},
		{"", "", true},
	}

	for _, c := range cases {
		t.Log("Testing timestamp:", c.input)

		result, err := FormatTimestamp(c.input)
		if (err != nil) != c.fails {
			t.Errorf("Got error %v, wanted failure: %v", err, c.fails)
		}
		if result != c.expected {
			t.Errorf("Got %v, wanted %v", result, c.expected)
		}
	}
}

func TestFormatMinuteTimestamp(t *testing.T) {
	type testCase struct {
		input    string
		expected string
		fails    bool
	}

	cases := []testCase{
		{"1949010100:18", "1949-01-01 00:18:00", false},
		{"1949010101:00", "1949-01-01 01:00:00", false},
		{"1949010100", "", true},
		{"1949010100:1", "", true},
	}

	for _, c := range cases {
		t.Log("Testing timestamp:", c.input)

		result, err := FormatMinuteTimestamp(c.input)
		if (err != nil) != c.fails {
			t.Errorf("Got error %v, wanted failure: %v", err, c.fails)
		}
		if result != c.expected {
			t.Errorf("Got %v, wanted %v", result, c.expected)
		}
	}
}
