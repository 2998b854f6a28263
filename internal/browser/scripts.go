package browser

import (
	"encoding/json"
	"fmt"
)

// jsString renders s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func findCellScript(cellSelector, date string) string {
	return fmt.Sprintf(`(() => {
	const cell = [...document.querySelectorAll(%s)].find(el => el.dataset.date === %s);
	return cell ? cell.cellIndex : -1;
})()`, jsString(cellSelector), jsString(date))
}

// entryContainerExpr evaluates to the entry container of a week column, or null.
// Column cells are counted without the leading time axis, hence the -1.
func entryContainerExpr(columnSelector, containerSelector string, columnIndex int) string {
	return fmt.Sprintf(`(() => {
		const column = [...document.querySelectorAll(%s)][%d - 1];
		return column ? column.querySelector(%s) : null;
	})()`, jsString(columnSelector), columnIndex, jsString(containerSelector))
}

// Entry colors are read from the CSSOM so they arrive in the serialized
// "rgb(r, g, b)" form that entity.Palette expects.
func cellEntriesScript(columnSelector, containerSelector string, columnIndex int) string {
	return fmt.Sprintf(`(() => {
	const container = %s;
	if (!container) return [];
	return [...container.children].map(c => c.style.backgroundColor);
})()`, entryContainerExpr(columnSelector, containerSelector, columnIndex))
}

func clickCellScript(columnSelector, containerSelector string, columnIndex int) string {
	return fmt.Sprintf(`(() => {
	const container = %s;
	if (!container) return false;
	container.click();
	return true;
})()`, entryContainerExpr(columnSelector, containerSelector, columnIndex))
}

func listEntriesScript(entrySelector string) string {
	return fmt.Sprintf(`[...document.querySelectorAll(%s)].map(el => el.style.backgroundColor)`, jsString(entrySelector))
}

func clickEntryScript(entrySelector string, index int) string {
	return fmt.Sprintf(`(() => {
	const entry = document.querySelectorAll(%s)[%d];
	if (!entry) return false;
	entry.click();
	return true;
})()`, jsString(entrySelector), index)
}

func clickScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%s);
	if (!el) return false;
	el.click();
	return true;
})()`, jsString(selector))
}

// selectScript sets a <select> value and fires the events a user change would.
func selectScript(selector, value string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%s);
	if (!el) return false;
	el.value = %s;
	el.dispatchEvent(new Event('input', { bubbles: true }));
	el.dispatchEvent(new Event('change', { bubbles: true }));
	return true;
})()`, jsString(selector), jsString(value))
}

func fieldValuesScript(selector string) string {
	return fmt.Sprintf(`[...document.querySelectorAll(%s)].map(el => el.value.trim())`, jsString(selector))
}

func replaceTextScript(selector, text string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%s);
	if (!el) return false;
	el.textContent = %s;
	return true;
})()`, jsString(selector), jsString(text))
}

// rectScript returns the document coordinates of the first match.
func rectScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%s);
	if (!el) throw new Error("element not found: " + %s);
	const r = el.getBoundingClientRect();
	return { x: r.x + window.scrollX, y: r.y + window.scrollY, width: r.width, height: r.height };
})()`, jsString(selector), jsString(selector))
}
