package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-grocery-sync/models"
)

var (
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(14)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	checkedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

// RenderStatus draws the status box.
func RenderStatus(st Status) string {
	var b strings.Builder

	user := warnStyle.Render("signed out")
	if st.Authenticated {
		user = okStyle.Render(valueOrNA(st.Username))
	}
	row(&b, "user", user)
	if !st.TokenExpires.IsZero() {
		row(&b, "token until", st.TokenExpires.Local().Format(time.DateTime))
	}
	row(&b, "last sync", formatTime(st.LastSync))
	row(&b, "lists", fmt.Sprint(st.Lists))
	row(&b, "stores", fmt.Sprint(st.Stores))

	pending := okStyle.Render("nothing to upload")
	if st.Pending.Total() > 0 {
		pending = warnStyle.Render(fmt.Sprintf("%d lists, %d items, %d stores, %d deletions",
			st.Pending.Lists, st.Pending.Items, st.Pending.Stores, st.Pending.Tombstones))
	}
	row(&b, "pending", pending)

	return renderPage("GROCERY SYNC", strings.TrimRight(b.String(), "\n"))
}

// RenderResult summarises one sync attempt.
func RenderResult(res models.SyncResult) string {
	var b strings.Builder

	outcome := okStyle.Render(res.Outcome.String())
	switch res.Outcome {
	case models.OutcomeRetryable:
		outcome = warnStyle.Render(res.Outcome.String())
	case models.OutcomeFatal:
		outcome = errorStyle.Render(res.Outcome.String())
	}
	row(&b, "outcome", outcome)
	if res.Mode != "" {
		row(&b, "mode", fmt.Sprintf("%s, %d phase(s)", res.Mode, res.Phases))
	}
	row(&b, "sent", fmt.Sprint(res.Sent))
	if res.Deferred > 0 {
		row(&b, "deferred", warnStyle.Render(fmt.Sprint(res.Deferred)))
	}
	row(&b, "merged", fmt.Sprintf("%d new, %d updated, %d skipped", res.Merge.Inserted, res.Merge.Updated, res.Merge.Skipped))
	if !res.ServerTimestamp.IsZero() {
		row(&b, "server time", formatTime(res.ServerTimestamp))
	}
	if res.Err != nil {
		row(&b, "error", errorStyle.Render(res.Err.Error()))
	}

	return renderPage("SYNC", strings.TrimRight(b.String(), "\n"))
}

// RenderLists prints one line per list.
func RenderLists(lists []models.ShoppingList) string {
	if len(lists) == 0 {
		return labelStyle.UnsetWidth().Render("no lists")
	}
	var b strings.Builder
	for _, l := range lists {
		fmt.Fprintf(&b, "%4d  %s %s\n", l.ID, l.Name, statusMark(l.SyncStatus))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderItems prints the items of one list.
func RenderItems(list models.ShoppingList, items []models.ShoppingItem) string {
	var b strings.Builder
	for _, it := range items {
		box := "[ ]"
		name := it.Name
		if it.Checked {
			box = "[x]"
			name = checkedStyle.Render(name)
		}
		qty := strings.TrimSpace(fmt.Sprintf("%g %s", it.Quantity, it.UnitType))
		fmt.Fprintf(&b, "%4d  %s %s  %s %s\n", it.ID, box, name, labelStyle.UnsetWidth().Render(qty), statusMark(it.SyncStatus))
	}
	body := strings.TrimRight(b.String(), "\n")
	if body == "" {
		body = "empty"
	}
	return renderPage(list.Name, body)
}

// RenderStores prints one line per store.
func RenderStores(stores []models.StoreLocation) string {
	if len(stores) == 0 {
		return labelStyle.UnsetWidth().Render("no stores")
	}
	var b strings.Builder
	for _, s := range stores {
		fmt.Fprintf(&b, "%4d  %s  %s (%.5f, %.5f) %s\n", s.ID, s.Name, s.Address, s.Latitude, s.Longitude, statusMark(s.SyncStatus))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderError formats err for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("error: ") + err.Error()
}

func renderPage(title, body string) string {
	return boxStyle.Render(titleStyle.Render(title) + "\n\n" + body)
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func statusMark(s models.SyncStatus) string {
	switch s {
	case models.StatusSynced:
		return ""
	case models.StatusModifiedLocally:
		return warnStyle.Render("*")
	default:
		return warnStyle.Render("+")
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
