package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"backpack/internal/graph"

	tea "github.com/charmbracelet/bubbletea"
)

// App is the root model: the graph selector plus the action prompt, status
// line and keybinds.
type App struct {
	Select     *GraphSelect
	Actions    *graph.Creators
	KeyHandler *KeyHandler
	Prompt     *CommandPrompt // nil when closed

	Status    string
	StatusErr bool
}

// Ensure App can be used as tea.Model via adapter.
var _ tea.Model = (*appAdapter)(nil)

// appAdapter wraps App to implement tea.Model.
type appAdapter struct {
	*App
}

// NewApp creates the root model around an unmounted container.
func NewApp(sel *GraphSelect, actions *graph.Creators) *App {
	quit := func() tea.Msg { return QuitMsg{} }
	prompt := func() tea.Msg { return ShowCommandPromptMsg{} }
	reg := NewKeybindRegistry()
	reg.Bind("q", quit, "Quit")
	reg.Bind("ctrl+c", quit, "Quit")
	reg.Bind(":", prompt, "Dispatch action")
	reg.Bind("SPC q", quit, "Quit")
	reg.Bind("SPC c", prompt, "Dispatch action")
	reg.Bind("SPC m", func() tea.Msg { return BumpMyNumMsg{} }, "Increment myN")
	reg.Bind("SPC g", focusCmd(FocusGraphNum), "Focus graph count")
	reg.Bind("SPC s", focusCmd(FocusStartTime), "Focus start time")
	reg.Bind("SPC e", focusCmd(FocusEndTime), "Focus end time")
	return &App{
		Select:     sel,
		Actions:    actions,
		KeyHandler: NewKeyHandler(reg),
	}
}

func focusCmd(id string) tea.Cmd {
	return func() tea.Msg { return FocusMsg{ID: id} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *App) AsTeaModel() tea.Model {
	return &appAdapter{App: a}
}

// Close releases the container's store subscription.
func (a *App) Close() {
	a.Select.Unmount()
}

// Init implements tea.Model. Mounting happens here so the subscription
// lives exactly as long as the program.
func (a *appAdapter) Init() tea.Cmd {
	a.Select.Mount()
	return a.Select.Init()
}

// Update implements tea.Model.
func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrMsg:
		log.Printf("ui: %v", msg.Err)
		a.Status, a.StatusErr = msg.Err.Error(), true
		return a, nil
	case StatusMsg:
		a.Status, a.StatusErr = msg.Text, false
		return a, nil
	case QuitMsg:
		a.Close()
		return a, tea.Quit
	case ShowCommandPromptMsg:
		a.Prompt = NewCommandPrompt()
		return a, a.Prompt.Init()
	case DismissModalMsg:
		a.Prompt = nil
		return a, nil
	case RunCommandMsg:
		a.Prompt = nil
		return a, a.runCommand(msg.Line)
	case FocusMsg:
		if !a.Select.FocusControl(msg.ID) {
			log.Printf("ui: focus target %q not rendered", msg.ID)
		}
		return a, nil
	case BumpMyNumMsg:
		return a, errCmd(a.Actions.SetMyNum(context.Background(), a.Select.MyN()+1))
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, func() tea.Msg { return QuitMsg{} }
		}
		if a.Prompt != nil {
			v, cmd := a.Prompt.Update(msg)
			a.Prompt, _ = v.(*CommandPrompt)
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	if a.Prompt != nil {
		v, cmd := a.Prompt.Update(msg)
		a.Prompt, _ = v.(*CommandPrompt)
		return a, cmd
	}
	_, cmd := a.Select.Update(msg)
	return a, cmd
}

func (a *App) runCommand(line string) tea.Cmd {
	rec, err := graph.ParseCommand(line)
	if err != nil {
		return errCmd(err)
	}
	if err := a.Actions.DispatchRecord(context.Background(), rec); err != nil {
		return errCmd(fmt.Errorf("dispatch %s: %w", rec.Type, err))
	}
	text := "dispatched " + rec.Type
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// View implements tea.Model.
func (a *appAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Backpack graph select") + "\n\n")
	b.WriteString(a.Select.View() + "\n")
	if a.Prompt != nil {
		b.WriteString(a.Prompt.View() + "\n")
	}
	if a.Status != "" {
		style := Styles.Status
		if a.StatusErr {
			style = Styles.Error
		}
		b.WriteString("\n" + style.Render(a.Status) + "\n")
	}
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		b.WriteString(help + "\n")
	} else {
		b.WriteString("\n" + RenderNavHelp() + "\n")
	}
	return b.String()
}
