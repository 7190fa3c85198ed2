// Package calendar formats dates in the Persian (Jalali) calendar.
package calendar

import (
	"strconv"
	"strings"
	"time"
)

// Date is a Jalali calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

var monthNames = [...]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// indexed by time.Weekday, Sunday first
var weekdayNames = [...]string{
	"یک‌شنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه", "شنبه",
}

var gregorianDaysBeforeMonth = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// ToJalali converts the calendar day of t, in t's location, to a Jalali date.
func ToJalali(t time.Time) Date {
	gy, gm, gd := t.Year(), int(t.Month()), t.Day()

	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	days := 355666 + 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 + gd + gregorianDaysBeforeMonth[gm-1]

	jy := -1595 + 33*(days/12053)
	days %= 12053
	jy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		return Date{Year: jy, Month: 1 + days/31, Day: 1 + days%31}
	}
	return Date{Year: jy, Month: 7 + (days-186)/30, Day: 1 + (days-186)%30}
}

// MonthName returns the Persian name of the date's month.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > len(monthNames) {
		return ""
	}
	return monthNames[d.Month-1]
}

// FormatLong renders the date as "day month year" with Persian digits, e.g. "۲۵ مهر ۱۴۰۵".
func (d Date) FormatLong() string {
	return PersianDigits(strconv.Itoa(d.Day)) + " " + d.MonthName() + " " + PersianDigits(strconv.Itoa(d.Year))
}

// Weekday returns the Persian name of a weekday.
func Weekday(w time.Weekday) string {
	return weekdayNames[w]
}

var digitReplacer = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

// PersianDigits replaces ASCII digits in s with Extended Arabic-Indic digits.
func PersianDigits(s string) string {
	return digitReplacer.Replace(s)
}
