package service

import (
	"fmt"
	"io"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ── 公休日 ICS 解析 ──────────────────────────────────────────
//
// 職責：將標準 iCalendar (RFC 5545) 內容解析為公休日期清單。
// 只取每個 VEVENT 的 DTSTART 日期部分；跨多日的假期以多個事件表示。
// ─────────────────────────────────────────────────────────────

// parseHolidayICS 解析 ICS 內容並回傳去重、排序後的 YYYY-MM-DD 日期清單
func parseHolidayICS(reader io.Reader) ([]string, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, fmt.Errorf("ICS 格式解析失敗: %w", err)
	}

	seen := make(map[string]bool)
	var dates []string
	for _, evt := range cal.Events() {
		d, ok := parseHolidayDate(evt)
		if !ok {
			continue
		}
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// parseHolidayDate 取出單個 VEVENT 的 DTSTART 日期
func parseHolidayDate(evt *ics.VEvent) (string, bool) {
	prop := evt.GetProperty(ics.ComponentPropertyDtStart)
	if prop == nil {
		return "", false
	}

	// 全日事件為 20060102；含時間的事件取其日期部分
	formats := []string{
		"20060102",
		"20060102T150405Z",
		"20060102T150405",
	}
	for _, layout := range formats {
		if t, err := time.Parse(layout, prop.Value); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
