package policy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Configurations are the selectable hub-airport setups, in prompt order.
var Configurations = []ParallelConfig{
	{Runways: []string{"19L", "19R"}, Mode: ModeMixed},
	{Runways: []string{"01L", "01R"}, Mode: ModeMixed},
	{Runways: []string{"19L", "19R"}, Mode: ModeSegregated},
	{Runways: []string{"01L", "01R"}, Mode: ModeSegregated},
	{Runways: []string{"19R"}, Mode: ModeSingle},
	{Runways: []string{"01L"}, Mode: ModeSingle},
}

// ConfigSelector chooses a parallel-runway configuration for the hub
// airport when wind alone can't decide one. The raw METAR is passed for
// display.
type ConfigSelector interface {
	SelectConfig(raw string) (ParallelConfig, error)
}

// ConsoleSelector prompts the operator for a configuration and blocks until
// a valid choice is entered.
type ConsoleSelector struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleSelector(in io.Reader, out io.Writer) *ConsoleSelector {
	return &ConsoleSelector{in: bufio.NewReader(in), out: out}
}

func (c *ConsoleSelector) SelectConfig(raw string) (ParallelConfig, error) {
	fmt.Fprintf(c.out, "\nCurrent conditions: %s\n", raw)
	fmt.Fprintln(c.out, "Runway configuration:")
	for i, cfg := range Configurations {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, cfg.Label())
	}

	for {
		fmt.Fprintf(c.out, "Select runway configuration (1-%d): ", len(Configurations))
		line, err := c.in.ReadString('\n')
		if err != nil {
			return ParallelConfig{}, fmt.Errorf("read choice: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= len(Configurations) {
			return Configurations[n-1], nil
		}
		fmt.Fprintf(c.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(Configurations))
	}
}

type fixedSelector struct {
	cfg ParallelConfig
}

func (f fixedSelector) SelectConfig(string) (ParallelConfig, error) {
	return f.cfg, nil
}

// NewFixedSelector returns a selector that always answers with
// configuration n (1-based prompt numbering) without prompting.
func NewFixedSelector(n int) (ConfigSelector, error) {
	if n < 1 || n > len(Configurations) {
		return nil, fmt.Errorf("configuration must be between 1 and %d, got %d", len(Configurations), n)
	}
	return fixedSelector{cfg: Configurations[n-1]}, nil
}
