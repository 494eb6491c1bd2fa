package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aarrwnh/intvec/vector"
)

var cmdPrefix = regexp.MustCompile("^[;:]")

// ErrQuit is returned by Process for the quit command.
var ErrQuit = errors.New("exiting program")

var usage = map[string]string{
	"fill":   "fill N MIN MAX",
	"insert": "insert INDEX VALUE",
	"remove": "remove INDEX",
	"rmv":    "rmv VALUE [first]",
	"get":    "get INDEX",
	"set":    "set INDEX VALUE | set seed N | set timing on|off",
	"index":  "index VALUE",
	"last":   "last VALUE",
}

// App runs text commands against a single vector. It is safe for use
// by the console loop and websocket clients at the same time.
type App struct {
	mu          sync.Mutex
	vec         *vector.Vector
	src         vector.Source
	out         io.Writer
	title       io.Writer
	timing      bool
	cancel      context.CancelFunc
	wsConns     int
}

func NewApp(vec *vector.Vector, src vector.Source, out io.Writer, cancel context.CancelFunc) *App {
	return &App{
		vec:    vec,
		src:    src,
		out:    out,
		title:  out,
		cancel: cancel,
	}
}

// SetOutput redirects command output to w and stops terminal title
// updates.
func (a *App) SetOutput(w io.Writer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.out = w
	a.title = io.Discard
}

// drain returns what has been written to buf and empties it. buf must
// be the writer passed to SetOutput.
func (a *App) drain(buf *bytes.Buffer) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := buf.String()
	buf.Reset()
	return s
}

// Start reads commands from in, one per line, until EOF or quit.
func (a *App) Start(in io.Reader) {
	sc := bufio.NewScanner(in)
	for {
		a.UpdateTitle()
		fmt.Fprint(a.out, "\n> ")
		if !sc.Scan() {
			fmt.Fprintln(a.out)
			if err := sc.Err(); err != nil {
				log.Println(err)
			}
			a.Quit()
			return
		}

		err := a.Process(strings.Trim(sc.Text(), "\n\r"))
		if errors.Is(err, ErrQuit) {
			a.Quit()
			return
		}
		if err != nil {
			printInfo(a.out, "%v", err)
		}
	}
}

func (a *App) Quit() {
	a.mu.Lock()
	printInfo(a.out, "vector at exit: %v", a.vec)
	a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
	}
}

// Vector returns a copy of the current vector.
func (a *App) Vector() *vector.Vector {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.vec.Clone()
}

// Process runs one command. Errors from the vector are returned to the
// caller and leave the session running; only ErrQuit ends it.
func (a *App) Process(input string) error {
	cmd, args := commandParse(input)
	if cmd == "" {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	switch cmdPrefix.ReplaceAllString(cmd, "") {
	case "fill":
		n, err := intArgs("fill", args, 3)
		if err != nil {
			return err
		}
		defer a.timeTrack(time.Now())
		if err := a.vec.RandomFill(a.src, n[0], n[1], n[2]); err != nil {
			return err
		}
		a.show()
	case "i", "insert":
		n, err := intArgs("insert", args, 2)
		if err != nil {
			return err
		}
		if err := a.vec.Insert(n[0], n[1]); err != nil {
			return err
		}
		a.show()
	case "rm", "remove":
		n, err := intArgs("remove", args, 1)
		if err != nil {
			return err
		}
		if err := a.vec.RemoveAt(n[0]); err != nil {
			return err
		}
		a.show()
	case "rmv":
		n, err := intArgs("rmv", args, 1)
		if err != nil {
			return err
		}
		all := len(args) < 2 || args[1] != "first"
		printInfo(a.out, "removed %d item/s", a.vec.RemoveByValue(n[0], all))
		a.show()
	case "popf":
		if _, err := a.vec.PopFront(); err != nil {
			return err
		}
		a.show()
	case "popb":
		if _, err := a.vec.PopBack(); err != nil {
			return err
		}
		a.show()
	case "get":
		n, err := intArgs("get", args, 1)
		if err != nil {
			return err
		}
		x, err := a.vec.At(n[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, x)
	case "set":
		return a.set(args)
	case "index":
		n, err := intArgs("index", args, 1)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.vec.IndexOf(n[0]))
	case "last":
		n, err := intArgs("last", args, 1)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.vec.LastIndexOf(n[0]))
	case "rev", "reverse":
		a.vec.Reverse()
		a.show()
	case "sort":
		defer a.timeTrack(time.Now())
		if len(args) > 0 && args[0] == "desc" {
			a.vec.SortDesc()
		} else {
			a.vec.SortAsc()
		}
		a.show()
	case "shuffle":
		defer a.timeTrack(time.Now())
		a.vec.Shuffle(a.src)
		a.show()
	case "trim":
		a.vec.TrimToSize()
		printInfo(a.out, "cap %d", a.vec.Cap())
	case "c", "clear":
		a.vec.Clear()
		a.show()
	case "ls", "show", "list":
		a.show()
		printInfo(a.out, "len %d | cap %d", a.vec.Len(), a.vec.Cap())
	case "q", "quit", "exit":
		return ErrQuit
	default:
		// bare integers are appended
		count, err := a.vec.ReadInts(strings.NewReader(input))
		var se *vector.SyntaxError
		if count == 0 && errors.As(err, &se) {
			return fmt.Errorf("unknown command %q", cmd)
		}
		a.show()
		return err
	}

	return nil
}

func (a *App) set(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: %s", usage["set"])
	}
	switch args[0] {
	case "seed":
		seed, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("set seed: %w", err)
		}
		a.src = vector.NewSource(seed)
		printInfo(a.out, "seed %d", seed)
	case "timing":
		a.timing = args[1] == "on"
	default:
		n, err := intArgs("set", args, 2)
		if err != nil {
			return err
		}
		if err := a.vec.Set(n[0], n[1]); err != nil {
			return err
		}
		a.show()
	}
	return nil
}

func (a *App) show() {
	fmt.Fprintln(a.out, a.vec)
}

func (a *App) timeTrack(start time.Time) {
	if a.timing {
		timeTrack(a.out, start)
	}
}

func (a *App) UpdateTitle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	var ws string
	if a.wsConns > 0 {
		ws = " | *"
	}
	setTitle(a.title, fmt.Sprintf("len:%d | cap:%d%s", a.vec.Len(), a.vec.Cap(), ws))
}

func (a *App) addConn(delta int) {
	a.mu.Lock()
	a.wsConns += delta
	a.mu.Unlock()
}

func intArgs(cmd string, args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, fmt.Errorf("usage: %s", usage[cmd])
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cmd, err)
		}
		out[i] = x
	}
	return out, nil
}
