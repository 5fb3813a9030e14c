// file: internal/shell/shell.go
// version: 1.0.0
// guid: d8422545-61dc-4ab9-8046-943af2b5f802

package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jdfalk/library-catalog/internal/models"
	"github.com/jdfalk/library-catalog/internal/operations"
)

const menu = `
Menu:
1 - Add a book
2 - Borrow a physical book
3 - Return a physical book
4 - Download a digital book
5 - Show book details
6 - Show all books
7 - Show available physical book count
8 - Show book summary
0 - Exit
`

// maxLineBytes caps a single input line; longer lines are discarded
const maxLineBytes = 1 << 20

const tooLongMessage = "Input is too long, please try again."

// ErrLineTooLong is returned by prompt when a line exceeds maxLineBytes.
// The rest of the line has already been consumed.
var ErrLineTooLong = errors.New("input line is too long")

// Shell is the interactive menu loop
type Shell struct {
	ops     *operations.Service
	in      *bufio.Reader
	out     io.Writer
	maxYear int
}

// New creates a shell reading from in and writing to out
func New(ops *operations.Service, in io.Reader, out io.Writer, maxYear int) *Shell {
	return &Shell{
		ops:     ops,
		in:      bufio.NewReader(in),
		out:     out,
		maxYear: maxYear,
	}
}

// Run shows the menu and dispatches choices until Exit is chosen or input
// ends. Only a failure to read input is returned as an error; an over-long
// line is reported and the loop continues.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		line, err := s.prompt("\nChoose an option: ")
		if errors.Is(err, ErrLineTooLong) {
			fmt.Fprintln(s.out, tooLongMessage)
			continue
		}
		if err != nil {
			return s.stop(err)
		}

		choice, err := ParseChoice(line)
		if err != nil {
			log.Printf("[WARN] %v", err)
			fmt.Fprintln(s.out, "Invalid command, please try again.")
			continue
		}
		if choice == ChoiceExit {
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, ErrLineTooLong) {
				fmt.Fprintln(s.out, tooLongMessage)
				continue
			}
			return s.stop(err)
		}
	}
}

// stop treats end of input like Exit
func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "\nExiting...")
		return nil
	}
	return err
}

func (s *Shell) dispatch(choice Choice) error {
	switch choice {
	case ChoiceAdd:
		return s.add()
	case ChoiceList:
		s.report(s.ops.List())
		return nil
	case ChoiceCount:
		s.report(s.ops.Count())
		return nil
	}

	var label string
	var op func(string) operations.Result
	switch choice {
	case ChoiceBorrow:
		label, op = "Enter the title of the book to borrow: ", s.ops.Borrow
	case ChoiceReturn:
		label, op = "Enter the title of the book to return: ", s.ops.Return
	case ChoiceDownload:
		label, op = "Enter the title of the book to download: ", s.ops.Download
	case ChoiceShow:
		label, op = "Enter the book title: ", s.ops.Show
	case ChoiceDescribe:
		label, op = "Enter the book title: ", s.ops.Describe
	default:
		return fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}

	title, err := s.prompt(label)
	if err != nil {
		return err
	}
	s.report(op(title))
	return nil
}

func (s *Shell) add() error {
	line, err := s.prompt("Enter book type (physical or digital): ")
	if err != nil {
		return err
	}
	kind, err := models.ParseKind(line)
	if err != nil {
		log.Printf("[WARN] %v", err)
		fmt.Fprintln(s.out, "Invalid book type!")
		return nil
	}

	req := operations.AddRequest{Kind: kind}
	if req.Title, err = s.prompt("Enter the title: "); err != nil {
		return err
	}
	if req.Author, err = s.prompt("Enter the author: "); err != nil {
		return err
	}

	req.Year, err = s.promptInt("Enter the publication year: ",
		fmt.Sprintf("Please enter a valid year (a number no later than %d).", s.maxYear),
		func(v string) (int, error) { return ParseYear(v, s.maxYear) })
	if err != nil {
		return err
	}

	if kind == models.KindPhysical {
		req.Pages, err = s.promptInt("Enter the number of pages: ",
			"Please enter a valid number of pages (a positive number).", ParsePages)
	} else {
		req.Format, err = s.prompt("Enter the file format (PDF, EPUB, ...): ")
	}
	if err != nil {
		return err
	}

	s.report(s.ops.Add(req))
	return nil
}

// prompt writes label and reads one line. io.EOF means input has ended.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// readLine reads up to the next newline. Lines over maxLineBytes are consumed
// in full and reported as ErrLineTooLong so the next read starts clean.
func (s *Shell) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := s.in.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if err != nil && len(line) == 0 && !tooLong {
			return "", io.EOF
		}
		break
	}
	if tooLong {
		log.Printf("[WARN] Discarded input line longer than %d bytes", maxLineBytes)
		return "", ErrLineTooLong
	}
	return strings.TrimSpace(string(line)), nil
}

// promptInt re-prompts until parse accepts the input
func (s *Shell) promptInt(label, retry string, parse func(string) (int, error)) (int, error) {
	for {
		line, err := s.prompt(label)
		if errors.Is(err, ErrLineTooLong) {
			fmt.Fprintln(s.out, retry)
			continue
		}
		if err != nil {
			return 0, err
		}
		n, err := parse(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(s.out, retry)
	}
}

func (s *Shell) report(res operations.Result) {
	fmt.Fprintln(s.out, res.Message)
}
