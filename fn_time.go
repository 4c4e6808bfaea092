package okra

import "fmt"

// Time functions: time::*.

// TimeUnit is a calendar interval accepted by time::group and the duration
// accessors.
type TimeUnit string

// Calendar units.
const (
	UnitYear   TimeUnit = "year"
	UnitMonth  TimeUnit = "month"
	UnitWeek   TimeUnit = "week"
	UnitDay    TimeUnit = "day"
	UnitHour   TimeUnit = "hour"
	UnitMinute TimeUnit = "minute"
	UnitSecond TimeUnit = "second"
)

func validUnit(u string) bool {
	switch TimeUnit(u) {
	case UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond:
		return true
	}
	return false
}

// TimeGroup builds time::group(t, unit). The unit may be a TimeUnit or its
// literal string; both produce identical text.
func TimeGroup(t any, unit any) Function {
	var name string
	switch u := unit.(type) {
	case TimeUnit:
		name = string(u)
	case string:
		name = u
	default:
		f := fnTyped("time::group", Datetime(t))
		f.errors = append(f.errors, fmt.Sprintf("invalid time unit %v", unit))
		return f
	}
	f := fnTyped("time::group", Datetime(t), Strand(name))
	if !validUnit(name) {
		f.errors = append(f.errors, fmt.Sprintf("invalid time unit %q", name))
	}
	return f
}

// TimeNow builds time::now().
func TimeNow() Function { return Fn("time::now") }

// TimeDay builds time::day(t).
func TimeDay(t any) Function { return fnTyped("time::day", Datetime(t)) }

// TimeFloor builds time::floor(t, d).
func TimeFloor(t, d any) Function { return fnTyped("time::floor", Datetime(t), Dur(d)) }

// TimeRound builds time::round(t, d).
func TimeRound(t, d any) Function { return fnTyped("time::round", Datetime(t), Dur(d)) }

// TimeFormat builds time::format(t, fmt).
func TimeFormat(t, format any) Function {
	return fnTyped("time::format", Datetime(t), Strand(format))
}

// TimeHour builds time::hour(t).
func TimeHour(t any) Function { return fnTyped("time::hour", Datetime(t)) }

// TimeMinute builds time::minute(t).
func TimeMinute(t any) Function { return fnTyped("time::minute", Datetime(t)) }

// TimeMonth builds time::month(t).
func TimeMonth(t any) Function { return fnTyped("time::month", Datetime(t)) }

// TimeNano builds time::nano(t).
func TimeNano(t any) Function { return fnTyped("time::nano", Datetime(t)) }

// TimeSecond builds time::second(t).
func TimeSecond(t any) Function { return fnTyped("time::second", Datetime(t)) }

// TimeTimezone builds time::timezone().
func TimeTimezone() Function { return Fn("time::timezone") }

// TimeUnix builds time::unix(t).
func TimeUnix(t any) Function { return fnTyped("time::unix", Datetime(t)) }

// TimeWday builds time::wday(t).
func TimeWday(t any) Function { return fnTyped("time::wday", Datetime(t)) }

// TimeWeek builds time::week(t).
func TimeWeek(t any) Function { return fnTyped("time::week", Datetime(t)) }

// TimeYday builds time::yday(t).
func TimeYday(t any) Function { return fnTyped("time::yday", Datetime(t)) }

// TimeYear builds time::year(t).
func TimeYear(t any) Function { return fnTyped("time::year", Datetime(t)) }
