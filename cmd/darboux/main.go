// Command darboux is an interactive terminal front-end for the numerical
// integration engine.  It prompts for an RPN integrand, an interval of
// the form [a ; b] and a partition refinement, persists every request to
// a flat text journal, and reports the three sign-corrected estimates
// with their derived differences and per-pass timing.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/darboux/integrate"
	"github.com/katalvlaran/darboux/journal"
	"github.com/katalvlaran/darboux/rpn"
)

const journalPath = "functions.txt"

func main() {
	printRules()

	in := bufio.NewScanner(os.Stdin)
	log := journal.New(journalPath)

	for {
		printMenu()
		choice, ok := readLine(in)
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			integrateNew(in, log)
		case "2":
			integrateLast(in, log)
		case "3":
			listSaved(log)
		default:
			return
		}
	}
}

func printRules() {
	fmt.Println("Welcome to the numerical integration program!")
	fmt.Println(strings.Repeat("-", 72))
	fmt.Println("| The rules of integrating:")
	fmt.Println("| \t a. Enter the integrand in Reverse Polish Notation.")
	fmt.Println("| \t b. Separate all operands and operators with single spaces.")
	fmt.Println("| \t c. Recognized functions: sin, cos, tg, ctg, ln, exp.")
	fmt.Println("| \t d. Recognized operators: + - * / ^ ; the variable is x.")
	fmt.Printf("| \t e. The integrand must not exceed %d characters.\n", rpn.MaxExpressionLen)
	fmt.Println("| \t f. Enter the interval in the form [start ; end].")
	fmt.Println(strings.Repeat("-", 72))
}

func printMenu() {
	fmt.Print("\nI can do the following tasks for you:\n" +
		"\t 1. Numerical integration\n" +
		"\t 2. Integrate the last saved function\n" +
		"\t 3. List the functions that have been saved\n" +
		"\t Other: Exit\n\n" +
		"To execute a task, enter a number chosen from above: ")
}

// integrateNew prompts for a full request, persists it, and runs it.
func integrateNew(in *bufio.Scanner, log *journal.Journal) {
	fmt.Print("Integrand (RPN): ")
	integrand, ok := readLine(in)
	if !ok {
		return
	}

	fmt.Print("Interval [start ; end]: ")
	interval, ok := readLine(in)
	if !ok {
		return
	}

	refinement, ok := promptRefinement(in)
	if !ok {
		return
	}

	if err := log.Append(strings.TrimSpace(integrand), strings.TrimSpace(interval)); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	run(integrand, interval, refinement)
}

// integrateLast replays the most recent journal entry.
func integrateLast(in *bufio.Scanner, log *journal.Journal) {
	entry, err := log.Last()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	fmt.Printf("Function to integrate: %s\n", entry.Integrand)
	fmt.Printf("Interval: %s\n", entry.Interval)

	refinement, ok := promptRefinement(in)
	if !ok {
		return
	}
	run(entry.Integrand, entry.Interval, refinement)
}

// listSaved prints every journal entry.
func listSaved(log *journal.Journal) {
	entries, err := log.Entries()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}
	for _, entry := range entries {
		fmt.Printf("%s\n%s\n", entry.Integrand, entry.Interval)
	}
}

// promptRefinement reads and validates the partition count.
func promptRefinement(in *bufio.Scanner) (int, bool) {
	fmt.Printf("Enter the scale of refinement (x in [%d ; %d]): ",
		integrate.MinRefinement, integrate.MaxRefinement)
	raw, ok := readLine(in)
	if !ok {
		return 0, false
	}

	refinement, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not an integer.\n", strings.TrimSpace(raw))

		return 0, false
	}

	return refinement, true
}

// run parses the request and reports the integration result.  Every
// failure terminates only this request, never the program.
func run(integrand, interval string, refinement int) {
	expr, err := rpn.Parse(integrand)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	iv, err := integrate.ParseInterval(interval)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	res, err := integrate.Integrate(expr, iv,
		integrate.WithRefinement(refinement), integrate.WithParallel())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	report(res)
}

// report prints the three sums, their derived values and per-pass timing.
func report(res integrate.Result) {
	fmt.Printf("\nRiemann-sum = %.6f\n", res.Riemann)
	fmt.Printf("Lower Darboux-sum = %.6f\n", res.Lower)
	fmt.Printf("Upper Darboux-sum = %.6f\n\n", res.Upper)

	fmt.Printf("Difference between Darboux-sums = %.6f\n", res.DarbouxDifference())
	fmt.Printf("Average of the Darboux-sums = %.6f\n", res.DarbouxAverage())
	fmt.Printf("Difference between Riemann-sum and average of the Darboux-sums = %.6f\n\n",
		res.RiemannDeviation())

	fmt.Printf("Time spent: Riemann %v, lower Darboux %v, upper Darboux %v\n",
		res.Timing.Riemann, res.Timing.Lower, res.Timing.Upper)
}

// readLine fetches the next input line; ok is false at end of input.
func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}

	return in.Text(), true
}
