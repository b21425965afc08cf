package dispatcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"
)

const promptChoice = "Enter your choice: "

func (d *Dispatcher) exitChoice() int {
	return len(d.handlers) + 1
}

// showMenu prints the header, one numbered line per handler, Exit, and the
// choice prompt.
func (d *Dispatcher) showMenu() {
	d.console.Println("")
	d.console.Println(l10n.T("--- File Manager Menu ---"))
	for i, h := range d.handlers {
		d.console.Println(fmt.Sprintf("%d. %s", i+1, l10n.T(h.Title())))
	}
	d.console.Println(fmt.Sprintf("%d. %s", d.exitChoice(), l10n.T("Exit")))
	d.console.Prompt(l10n.T(promptChoice))
}

// readChoice reads lines until one starts with an integer in menu range.
// Blank lines are skipped; anything after the first field is ignored.
func (d *Dispatcher) readChoice() (int, error) {
	for {
		line, err := d.console.ReadLine()
		if err != nil {
			return 0, err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		choice, err := strconv.Atoi(fields[0])
		if err != nil {
			d.console.Println(l10n.F("Invalid input. Please enter a number between 1 and %d.", d.exitChoice()))
			d.console.Prompt(l10n.T(promptChoice))
			continue
		}
		if choice < 1 || choice > d.exitChoice() {
			d.console.Println(l10n.T("Invalid option. Please try again."))
			d.console.Prompt(l10n.T(promptChoice))
			continue
		}
		return choice, nil
	}
}
