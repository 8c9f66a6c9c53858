package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"basket/internal/domain/report"
)

const lineWidth = 60

// Formatter renders the three aggregate views as a fixed-width console
// report. All numeric coercion happens here: a null average or count renders
// as 0, never as an error, so WriteSummary has no failure path.
type Formatter struct {
	out io.Writer
	now func() time.Time
}

// New creates a Formatter writing to out
func New(out io.Writer) *Formatter {
	return &Formatter{
		out: out,
		now: time.Now,
	}
}

// WriteSummary prints the full analysis report: banner, generation
// timestamp, then the top items, store distribution, and top shoppers
// sections. Empty views get an explicit "no data available" line.
func (f *Formatter) WriteSummary(items []report.TopItem, stores []report.StoreStat, users []report.UserStat) {
	f.banner()
	fmt.Fprintf(f.out, "Generated at: %s\n", f.now().Format("2006-01-02 15:04:05"))
	f.rule('-')

	f.writeTopItems(items)
	f.writeStores(stores)
	f.writeUsers(users)

	fmt.Fprintln(f.out)
	f.rule('=')
	fmt.Fprintln(f.out)
}

func (f *Formatter) writeTopItems(items []report.TopItem) {
	fmt.Fprintf(f.out, "\nTOP %d MOST FREQUENT ITEMS:\n", topItemRows)
	f.rule('-')

	if len(items) == 0 {
		fmt.Fprintln(f.out, "  No item data available")
		return
	}

	for i, item := range items {
		if i >= topItemRows {
			break
		}
		fmt.Fprintf(f.out, "%d. %-20s - Count: %3s | Users: %2d | Avg Qty: %.1f\n",
			i+1, item.ItemName, humanize.Comma(item.Frequency),
			item.UniqueUsers, item.AvgQuantityValue(),
		)
	}
}

func (f *Formatter) writeStores(stores []report.StoreStat) {
	fmt.Fprintln(f.out, "\nSTORE DISTRIBUTION:")
	f.rule('-')

	if len(stores) == 0 {
		fmt.Fprintln(f.out, "  No store data available")
		return
	}

	for i, s := range stores {
		if i >= topStoreRows {
			break
		}
		fmt.Fprintf(f.out, "  %-20s - Items: %3s | Unique: %3d | Customers: %2d\n",
			s.Store, humanize.Comma(s.ItemCount), s.UniqueItems, s.Customers,
		)
	}
}

func (f *Formatter) writeUsers(users []report.UserStat) {
	fmt.Fprintln(f.out, "\nTOP SHOPPERS:")
	f.rule('-')

	if len(users) == 0 {
		fmt.Fprintln(f.out, "  No user data available")
		return
	}

	for i, u := range users {
		if i >= topUserRows {
			break
		}
		fmt.Fprintf(f.out, "  %-30s - Items: %3s | Unique: %3d\n",
			u.Email, humanize.Comma(u.TotalItems), u.UniqueItems,
		)
	}
}

func (f *Formatter) banner() {
	fmt.Fprintln(f.out)
	f.rule('=')
	fmt.Fprintln(f.out, "GROCERY ITEM ANALYSIS REPORT")
	f.rule('=')
}

func (f *Formatter) rule(c byte) {
	fmt.Fprintln(f.out, strings.Repeat(string(c), lineWidth))
}

// Section row caps match the console report contract: top 5 items,
// top 3 stores, top 3 shoppers.
const (
	topItemRows  = 5
	topStoreRows = 3
	topUserRows  = 3
)
