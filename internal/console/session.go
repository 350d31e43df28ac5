// Package console implements the line-oriented interactive session:
// render the task list and menu, read one choice, dispatch, repeat.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// State is the session state.
type State int

const (
	StateAwaitingChoice State = iota // Waiting for a menu choice
	StateEnded                       // Saved and finished
)

// Choice is a menu option as typed by the user.
type Choice string

const (
	ChoiceAdd      Choice = "1"
	ChoiceComplete Choice = "2"
	ChoiceEnd      Choice = "3"
)

// User-facing text.
const (
	headerText        = "ToDo List:"
	optionsText       = "Options:\n1. Add Task to list\n2. Mark Task as Complete\n3. End"
	descriptionPrompt = "Enter task description:"
	taskIDPrompt      = "Enter the task ID to mark as complete:"
	markedDoneText    = "Task marked as done."
	alreadyDoneText   = "Task is already marked as done."
	notFoundText      = "Task not found."
	invalidNumberText = "Invalid number, please try again."
	invalidOptionText = "Invalid option. Please input option 1 to 3."
	endingText        = "Ending now."
)

// transition handles one menu choice and returns the next state.
type transition func(ctx context.Context) (State, error)

// Deps holds the use cases a session dispatches to.
type Deps struct {
	AddTask   *usecase.AddTask
	MarkDone  *usecase.MarkDone
	SaveTasks *usecase.SaveTasks
	Logger    domain.Logger
}

// Options configures session behavior.
type Options struct {
	// RetryInvalidID re-prompts instead of aborting when a task id is malformed.
	RetryInvalidID bool
}

// Session drives one interactive run over an in-memory task list.
type Session struct {
	in          *bufio.Reader
	out         io.Writer
	list        *domain.TaskList
	deps        Deps
	transitions map[Choice]transition
	styles      Styles
	state       State
	opts        Options
}

// New creates a session reading choices from in and writing to out.
func New(in io.Reader, out io.Writer, list *domain.TaskList, deps Deps, opts Options) *Session {
	s := &Session{
		in:     bufio.NewReader(in),
		out:    out,
		list:   list,
		deps:   deps,
		styles: NewStyles(out),
		state:  StateAwaitingChoice,
		opts:   opts,
	}
	s.transitions = map[Choice]transition{
		ChoiceAdd:      s.addTask,
		ChoiceComplete: s.completeTask,
		ChoiceEnd:      s.end,
	}
	return s
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// List returns the session's task list.
func (s *Session) List() *domain.TaskList {
	return s.list
}

// Run loops until the end choice saves the list.
// Errors abort the session without saving: closed input, a malformed
// task id (unless retry is enabled) and a failed save.
func (s *Session) Run(ctx context.Context) error {
	for s.state != StateEnded {
		s.render()

		line, err := s.readLine()
		if err != nil {
			return err
		}

		next, err := s.dispatch(ctx, Choice(line))
		if err != nil {
			return err
		}
		s.state = next
	}
	return nil
}

func (s *Session) dispatch(ctx context.Context, choice Choice) (State, error) {
	t, ok := s.transitions[choice]
	if !ok {
		s.println(invalidOptionText)
		s.println("")
		return StateAwaitingChoice, nil
	}
	return t(ctx)
}

func (s *Session) addTask(ctx context.Context) (State, error) {
	s.println(descriptionPrompt)
	description, err := s.readLine()
	if err != nil {
		return s.state, err
	}

	if _, err := s.deps.AddTask.Execute(ctx, usecase.AddTaskInput{
		List:        s.list,
		Description: description,
	}); err != nil {
		return s.state, err
	}
	return StateAwaitingChoice, nil
}

func (s *Session) completeTask(ctx context.Context) (State, error) {
	s.println(taskIDPrompt)
	line, err := s.readLine()
	if err != nil {
		return s.state, err
	}

	id, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		s.logWarn("input", fmt.Sprintf("malformed task id %q", line))
		if s.opts.RetryInvalidID {
			s.println(s.styles.Error.Render(invalidNumberText))
			return StateAwaitingChoice, nil
		}
		return s.state, fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	}

	_, err = s.deps.MarkDone.Execute(ctx, usecase.MarkDoneInput{
		List:   s.list,
		TaskID: uint32(id),
	})
	switch {
	case err == nil:
		s.println(markedDoneText)
	case errors.Is(err, domain.ErrAlreadyDone):
		s.println(alreadyDoneText)
	case errors.Is(err, domain.ErrTaskNotFound):
		s.println(notFoundText)
	default:
		return s.state, err
	}
	return StateAwaitingChoice, nil
}

func (s *Session) end(ctx context.Context) (State, error) {
	s.println(endingText)
	if _, err := s.deps.SaveTasks.Execute(ctx, usecase.SaveTasksInput{List: s.list}); err != nil {
		return s.state, err
	}
	return StateEnded, nil
}

// render prints the task listing followed by the menu.
func (s *Session) render() {
	s.println(s.styles.Header.Render(headerText))
	for _, t := range s.list.Tasks {
		glyph := t.Status().Glyph()
		if t.Done {
			glyph = s.styles.Done.Render(glyph)
		} else {
			glyph = s.styles.Pending.Render(glyph)
		}
		s.println(fmt.Sprintf("%s %d %s", glyph, t.ID, t.Description))
	}
	if n := s.list.DoneCount(); n > 0 {
		s.println(s.styles.Summary.Render(fmt.Sprintf("You have %d task(s) done.", n)))
		s.println("")
	}
	s.println(optionsText)
}

// readLine reads one line with surrounding whitespace trimmed.
// A final line without a newline is still returned; end of input after
// that is reported as domain.ErrInputClosed.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		s.logWarn("input", fmt.Sprintf("console read: %v", err))
		if errors.Is(err, io.EOF) {
			return "", domain.ErrInputClosed
		}
		return "", fmt.Errorf("%w: %w", domain.ErrInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Session) logWarn(category, msg string) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(category, msg)
	}
}
