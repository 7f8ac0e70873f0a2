/*
Copyright 2026 The burstplan Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package report renders planning results as text tables, JSON or YAML.
package report

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/burstplan/burstplan/pkg/core"
)

var printer = message.NewPrinter(language.English)

// Currency formats dollars with thousands separators, e.g. "$1,234.56".
func Currency(amount float64) string {
	if amount < 0 {
		return "-" + printer.Sprintf("$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// Hours formats seconds as fractional hours, e.g. "3.2 hrs".
func Hours(seconds float64) string {
	return fmt.Sprintf("%.1f hrs", seconds/core.SecondsPerHour)
}

// Duration formats seconds at a readable scale: minutes below an hour,
// hours below a day, then days and hours.
func Duration(seconds float64) string {
	hours := seconds / core.SecondsPerHour
	switch {
	case hours < 1:
		return fmt.Sprintf("%d min", int(hours*60))
	case hours < 24:
		return fmt.Sprintf("%.1f hrs", hours)
	default:
		days := math.Floor(hours / 24)
		return fmt.Sprintf("%dd %.1fh", int(days), hours-days*24)
	}
}

// Percent formats a fraction as a percentage, e.g. 0.125 as "12.5%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}
