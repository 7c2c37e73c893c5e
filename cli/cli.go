// Package cli is the secondary, interactive surface of spec.md §6: a
// semicolon-directive prompt over a handle.Session, grounded on the
// teacher's engine.Play() loop (redisplay state, prompt, read one line,
// dispatch, repeat) generalized from a single chess move per line to a
// small directive language.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/handle"
)

// Run drives an interactive session over s, reading directive lines from
// in and writing all output to out. Returns the process exit code (0 on
// normal quit, per spec.md §6).
func Run(s *handle.Session, in io.Reader, out io.Writer) int {
	reader := bufio.NewReader(in)
	fmt.Fprintln(out, "=== Kill Doctor Lucky ===")
	fmt.Fprintln(out, "directives (';'-separated): q d r u h a<level> e<level> b<Board> w<wing...> p<n> c<file> i<file> <pieceNum>@<roomId>")
	displayState(s, out)

	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return 0
			}
			fmt.Fprintln(out, "error reading input:", err)
			return 1
		}

		if dispatchLine(s, strings.TrimSpace(line), out) {
			fmt.Fprintln(out, "goodbye")
			return 0
		}
		if err == io.EOF {
			return 0
		}
	}
}

// dispatchLine splits line on ';', accumulating consecutive
// "<pieceNum>@<roomId>" clauses into one applied turn (board.ParseCLIPlan
// already supports that chaining for two-mover turns) and running every
// other directive immediately. Returns true if the line requested quit.
func dispatchLine(s *handle.Session, line string, out io.Writer) bool {
	var pending []string
	flushMoves := func() {
		if len(pending) == 0 {
			return
		}
		applyMovePlan(s, strings.Join(pending, ";"), out)
		pending = nil
	}

	for _, raw := range strings.Split(line, ";") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		if isMoveClause(tok) {
			pending = append(pending, tok)
			continue
		}
		flushMoves()
		if runDirective(s, tok, out) {
			return true
		}
	}
	flushMoves()
	return false
}

func isMoveClause(tok string) bool {
	parts := strings.SplitN(tok, "@", 2)
	if len(parts) != 2 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	return err == nil
}

func applyMovePlan(s *handle.Session, planText string, out io.Writer) {
	current, ok := board.ParsePieceId(s.CurrentPlayerPieceId())
	if !ok {
		fmt.Fprintln(out, "internal error: unknown current player")
		return
	}
	turn, err := board.ParseCLIPlan(planText, current)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	plan, err := turn.EncodePlan()
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if msg := s.ApplyTurnPlan(plan); msg != "" {
		fmt.Fprintln(out, "invalid turn:", msg)
		return
	}
	displayState(s, out)
}

func runDirective(s *handle.Session, tok string, out io.Writer) bool {
	fields := strings.Fields(tok)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "q":
		return true
	case "d":
		displayState(s, out)
	case "r":
		s.ResetGame()
		fmt.Fprintln(out, "game reset")
		displayState(s, out)
	case "u":
		if s.UndoLastTurn() {
			fmt.Fprintln(out, "undone")
			displayState(s, out)
		} else {
			fmt.Fprintln(out, "nothing to undo")
		}
	case "h":
		printHistory(s, out)
	case "a":
		analyze(s, parseLevel(args), out, false)
	case "e":
		analyze(s, parseLevel(args), out, true)
	case "b":
		if len(args) == 0 {
			fmt.Fprintln(out, "usage: b <BoardName>")
			break
		}
		if err := s.SwitchBoard(args[0], nil); err != nil {
			fmt.Fprintln(out, err)
			break
		}
		fmt.Fprintf(out, "switched to board %q\n", args[0])
		displayState(s, out)
	case "w":
		if len(args) == 0 {
			fmt.Fprintln(out, "usage: w <wing...>")
			break
		}
		if err := s.SwitchBoard(s.BoardName(), args); err != nil {
			fmt.Fprintln(out, err)
			break
		}
		fmt.Fprintf(out, "closed wings %v\n", args)
		displayState(s, out)
	case "p":
		handlePlayerCount(args, out)
	case "c":
		exportToFile(s, firstArg(args), out)
	case "i":
		importFromFile(s, firstArg(args), out)
	default:
		fmt.Fprintf(out, "unrecognized directive %q\n", tok)
	}
	return false
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func parseLevel(args []string) int {
	if len(args) == 0 {
		return 0
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// handlePlayerCount answers the CLI's "p <n>" directive. The engine model
// is fixed at two human players (spec.md's ">2 human players" non-goal),
// so n is validated but never changes engine behavior — it exists purely
// so the directive named in spec.md §6 has a host-reachable handler
// instead of being silently dropped.
func handlePlayerCount(args []string, out io.Writer) {
	if len(args) == 0 {
		fmt.Fprintln(out, "usage: p <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(out, "invalid player count:", args[0])
		return
	}
	if n != 2 {
		fmt.Fprintln(out, "this variant supports exactly 2 human players; ignoring")
		return
	}
	fmt.Fprintln(out, "player count confirmed: 2")
}

func analyze(s *handle.Session, level int, out io.Writer, execute bool) {
	resp, err := s.FindBestTurn(level)
	if err != nil {
		fmt.Fprintln(out, "search error:", err)
		return
	}

	var result struct {
		IsValid           bool            `json:"isValid"`
		ValidationMessage string          `json:"validationMessage"`
		SuggestedTurn     json.RawMessage `json:"suggestedTurn"`
		SuggestedTurnText string          `json:"suggestedTurnText"`
		HeuristicScore    float64         `json:"heuristicScore"`
		NumStatesVisited  int64           `json:"numStatesVisited"`
		ElapsedMs         int64           `json:"elapsedMs"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		fmt.Fprintln(out, "internal error:", err)
		return
	}
	if !result.IsValid {
		fmt.Fprintln(out, result.ValidationMessage)
		return
	}
	fmt.Fprintf(out, "best turn: %s  (score %.4f, %d states, %dms)\n",
		result.SuggestedTurnText, result.HeuristicScore, result.NumStatesVisited, result.ElapsedMs)

	if execute {
		if msg := s.ApplyTurnPlan(result.SuggestedTurn); msg != "" {
			fmt.Fprintln(out, "failed to apply suggested turn:", msg)
			return
		}
		displayState(s, out)
	}
}

func printHistory(s *handle.Session, out io.Writer) {
	turns := s.History()
	if len(turns) == 0 {
		fmt.Fprintln(out, "(no turns yet)")
		return
	}
	for i, t := range turns {
		fmt.Fprintf(out, "%3d: %s\n", i+1, t)
	}
}

func exportToFile(s *handle.Session, path string, out io.Writer) {
	if path == "" {
		fmt.Fprintln(out, "usage: c <file>")
		return
	}
	data, err := s.ExportStateJSON()
	if err != nil {
		fmt.Fprintln(out, "export failed:", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintln(out, "export failed:", err)
		return
	}
	fmt.Fprintf(out, "exported state to %s\n", path)
}

func importFromFile(s *handle.Session, path string, out io.Writer) {
	if path == "" {
		fmt.Fprintln(out, "usage: i <file>")
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(out, "import failed:", err)
		return
	}
	if msg := s.ImportStateJSON(data); msg != "" {
		fmt.Fprintln(out, "import failed:", msg)
		return
	}
	fmt.Fprintln(out, "imported state from", path)
	displayState(s, out)
}

func displayState(s *handle.Session, out io.Writer) {
	fmt.Fprintf(out, "\nboard: %s   current: %s\n", s.BoardName(), s.CurrentPlayerPieceId())
	positions := s.PiecePositions()
	for i, p := range board.CanonicalOrder {
		room := positions[i]
		fmt.Fprintf(out, "  %-10s R%d %s\n", p, room, s.RoomName(room))
	}
	if s.HasWinner() {
		fmt.Fprintf(out, "winner: %s\n", s.WinnerPieceId())
	}
}
