package cli

import (
	"context"
	"fmt"
)

// Menu runs the main dispatch loop. Each iteration prints the fixed menu,
// reads one trimmed selection, and dispatches. Unknown selections are
// reported and re-prompted; only "0" ends the loop. Errors from dispatched
// operations (store failures, non-numeric input) are fatal and returned.
func (a *App) Menu(ctx context.Context) error {
	for {
		a.printMenu()

		choice, err := GetSimpleText(a.reader, "Select an option:", a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.ListMissions(ctx)
		case "2":
			err = a.ShowMission(ctx)
		case "3":
			err = a.CountMissionsByYear(ctx)
		case "4":
			err = a.CreateAccount(ctx)
		case "5":
			err = a.UpdatePassword(ctx)
		case "6":
			err = a.DeleteAccount(ctx)
		case "0":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "invalid option")
		}

		if err != nil {
			return err
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "Welcome to the Moon Mission Database!")
	fmt.Fprintln(a.out, "1) List moon missions.")
	fmt.Fprintln(a.out, "2) Get a moon mission by mission_id.")
	fmt.Fprintln(a.out, "3) Count missions for a given year.")
	fmt.Fprintln(a.out, "4) Create an account.")
	fmt.Fprintln(a.out, "5) Update an account password.")
	fmt.Fprintln(a.out, "6) Delete an account.")
	fmt.Fprintln(a.out, "0) Exit.")
}
