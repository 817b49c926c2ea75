package shell

import (
	"ataxx/config"
	"ataxx/game"
	"ataxx/searcher/agent"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	msgMoveSyntax = "Bad command or syntax for move. Type 'help' for commands and syntax."
	msgNoAlgo     = "No AI algorithm provided. Type 'help' for available commands."
	msgGameOver   = "Cannot process moves when game is over."
	msgNoUndo     = "Cannot undo any further"
	msgNoMove     = "No move available, the game is over."
)

type ShellController struct {
	out io.Writer
	cfg *config.Config

	session *game.Session
	advisor *agent.Advisor
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController writes to out, or to stdout when out is nil.
func NewShellController(cfg *config.Config, out io.Writer) *ShellController {
	if out == nil {
		out = os.Stdout
	}
	return &ShellController{
		out:     out,
		cfg:     cfg,
		session: game.NewSession(),
		advisor: agent.NewAdvisor(cfg.AdvisorOptions()...),
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) scoreReport() string {
	s1, s2 := sc.session.Board().Score()
	return fmt.Sprintf("Score:\n\tPlayer 1: %02d\n\tPlayer 2: %02d", s1, s2)
}

// showStatus prints the score, the board and, once the game is over, the result.
func (sc *ShellController) showStatus() {
	b := sc.session.Board()
	sc.showMessage(sc.scoreReport())
	sc.showMessage("")
	sc.showMessage(b.String())
	sc.showMessage("")
	if !b.GameOver() {
		return
	}
	sc.showMessage("Game over")
	if winner := b.Winner(); winner != game.Empty {
		sc.showMessage(winner.String() + " wins")
	} else {
		sc.showMessage("Draw")
	}
}

// Prompt names the player to move, or the way out of a finished game.
func (sc *ShellController) Prompt() string {
	b := sc.session.Board()
	if b.GameOver() {
		return "Type 'new', 'undo', or 'quit': "
	}
	return fmt.Sprintf("%s's move: ", b.Turn())
}

// Execute runs one command line and reports whether the shell should quit.
func (sc *ShellController) Execute(line string) bool {
	cmd, err := extractFields(line)
	if errors.Is(err, errNoData) {
		return false
	}
	if err != nil {
		sc.showError(err)
		return false
	}

	switch cmd.cmd {
	case "quit", "exit":
		return true
	case "help":
		sc.showMessage(helpMessage)
		return false
	case "undo":
		if err := sc.session.Undo(); err != nil {
			sc.showMessage(msgNoUndo)
		}
	case "new":
		sc.session = game.NewSession()
		log.Debug().Str("session", sc.session.ID.String()).Msg("new game")
	case "show":
	case "ai":
		if len(cmd.args) == 0 {
			sc.listAlgorithms()
			return false
		}
		sc.aiMove(cmd.args)
	default:
		sc.humanMove(append([]string{cmd.cmd}, cmd.args...))
	}
	sc.showStatus()
	return false
}

func (sc *ShellController) listAlgorithms() {
	sc.showMessage("List of AI algorithms:")
	sc.showMessage(strings.Join(lo.Map(agent.Names(), func(name string, _ int) string {
		return "\t" + name
	}), "\n"))
	sc.showMessage("")
}

func (sc *ShellController) aiMove(args []string) {
	name, depth, err := parseAi(args)
	if errors.Is(err, errNoAlgo) {
		sc.showMessage(msgNoAlgo)
		return
	}
	if err != nil {
		sc.showError(err)
		return
	}
	m, ok, err := sc.advisor.Suggest(sc.session.Board(), name, depth...)
	if err != nil {
		sc.showError(err)
		return
	}
	if !ok {
		sc.showMessage(msgNoMove)
		return
	}
	if err := sc.session.Play(m); err != nil {
		sc.showError(err)
		return
	}
	sc.showMessage("Moved " + m.String())
}

func (sc *ShellController) humanMove(fields []string) {
	m, err := parseMove(fields)
	if err != nil {
		sc.showMessage(msgMoveSyntax)
		return
	}
	if sc.session.Board().GameOver() {
		sc.showMessage(msgGameOver)
		return
	}
	if err := sc.session.Play(m); err != nil {
		sc.showError(err)
	}
}

// Loop reads commands from the terminal until quit, Ctrl-C on an empty line, or EOF.
func (sc *ShellController) Loop() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          sc.Prompt(),
		HistoryFile:     sc.cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	sc.out = l.Stdout()

	sc.showMessage(banner)
	sc.showMessage(helpMessage)
	sc.showMessage("")
	sc.showStatus()

	for {
		l.SetPrompt(sc.Prompt())
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if sc.Execute(strings.TrimSpace(line)) {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
	return nil
}
