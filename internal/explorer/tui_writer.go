package explorer

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"mccse/internal/catalog"
	"mccse/internal/voyage"
)

// teaProgram abstracts bubbletea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

// rowMsg carries an evaluated scenario and its log line.
type rowMsg struct {
	line string
	row  voyage.ScenarioRow
}

// setEvalMsg registers the callback that evaluates a request.
type setEvalMsg struct{ fn func(voyage.Request) }

const (
	fallbackEvalInput = "Panamax,VLSFO,13,10000,0,0,0,100"
	maxChartBarWidth  = 40
)

// TUIWriter renders scenario results in a bubbletea TUI.
type TUIWriter struct {
	program    teaProgram
	fuelColors map[string]string
	colorIdx   int
	done       chan struct{}
	sendSignal atomic.Bool
}

// NewTUIWriter starts a bubbletea program and returns a TUIWriter.
func NewTUIWriter(cat *catalog.Catalog) *TUIWriter {
	fc := make(map[string]string)
	w := &TUIWriter{fuelColors: fc, done: make(chan struct{})}
	w.sendSignal.Store(true)
	m := newTUIModel(cat, fc)
	p := tea.NewProgram(m, tea.WithAltScreen())
	w.program = p
	for _, label := range cat.FuelLabels() {
		w.getFuelColor(label)
	}
	go func() {
		_ = p.Start()
		close(w.done)
		if w.sendSignal.Load() {
			if proc, err := os.FindProcess(os.Getpid()); err == nil {
				_ = proc.Signal(os.Interrupt)
			}
		}
	}()
	return w
}

func (w *TUIWriter) getFuelColor(label string) string {
	if c, ok := w.fuelColors[label]; ok {
		return c
	}
	c := fuelPalette[w.colorIdx%len(fuelPalette)]
	w.fuelColors[label] = c
	w.colorIdx++
	return c
}

// Write implements ResultWriter.
func (w *TUIWriter) Write(row voyage.ScenarioRow) error {
	fColor := w.getFuelColor(row.FuelKey)
	line := fmt.Sprintf("%s[%s]%s %svessel=%s%s %sfuel=%s%s %sspd=%.1f%s %sdist=%.0f%s %sfoul=%.0f%s %swind=%.0f%s %ssolar=%.0f%s %sfuel_t=%.1f%s %sco2_t=%.1f%s %stotal=$%.0f%s",
		colorGray, row.Timestamp.Format(time.RFC3339), colorReset,
		colorBlue, row.VesselKey, colorReset,
		fColor, row.FuelKey, colorReset,
		colorYellow, row.SpeedKn, colorReset,
		colorCyan, row.DistanceNM, colorReset,
		colorRed, row.HullFoulingPct, colorReset,
		colorGreen, row.WindAssistPct, colorReset,
		colorMagenta, row.SolarAssistPct, colorReset,
		colorGreen, row.FuelTonnes, colorReset,
		colorMagenta, row.CO2Tonnes, colorReset,
		colorWhite, row.TotalSpendUSD, colorReset,
	)
	if row.Cached {
		line += fmt.Sprintf(" %scached%s", colorGray, colorReset)
	}
	w.program.Send(rowMsg{line: line, row: row})
	return nil
}

// WriteBatch outputs multiple scenario rows.
func (w *TUIWriter) WriteBatch(rows []voyage.ScenarioRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}

// SetEvaluator registers a callback used by the evaluate dialog.
func (w *TUIWriter) SetEvaluator(fn func(voyage.Request)) {
	w.program.Send(setEvalMsg{fn: fn})
}

// Close shuts down the TUI program and waits for cleanup.
func (w *TUIWriter) Close() error {
	w.sendSignal.Store(false)
	if w.program != nil {
		w.program.Send(tea.Quit())
	}
	if w.done != nil {
		<-w.done
	}
	return nil
}

type tuiModel struct {
	cat          *catalog.Catalog
	table        table.Model
	vp           viewport.Model
	logs         []string
	lastRow      voyage.ScenarioRow
	haveRow      bool
	scenarios    int
	cachedHits   int
	totalCO2     float64
	totalSpend   float64
	fuelCounts   map[string]int
	wrap         bool
	autoscroll   bool
	showChart    bool
	summary      bool
	help         bool
	header       string
	headerHeight int
	height       int
	fuelColors   map[string]string
	evaluate     func(voyage.Request)
	evalInput    textinput.Model
	evalDialog   bool
}

func newTUIModel(cat *catalog.Catalog, fuelColors map[string]string) tuiModel {
	cols := []table.Column{
		{Title: "Vessel", Width: 12},
		{Title: "coeff a", Width: 10},
		{Title: "Cargo (t)", Width: 10},
	}
	var rows []table.Row
	for _, v := range cat.VesselClasses() {
		rows = append(rows, table.Row{v.Name, fmt.Sprintf("%.6f", v.CoefficientA), fmt.Sprintf("%.0f", v.CargoTonnes)})
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithHeight(len(rows)+1))
	vp := viewport.New(0, 0)
	return tuiModel{
		cat:        cat,
		table:      t,
		vp:         vp,
		fuelColors: fuelColors,
		autoscroll: true,
		showChart:  true,
		fuelCounts: make(map[string]int),
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width / 2)
		m.vp.Width = msg.Width
		m.height = msg.Height
		m.header = m.renderHeader()
		m.headerHeight = lipgloss.Height(m.header)
		m.updateViewportHeight()
		m.refreshViewport()
	case tea.KeyMsg:
		if m.evalDialog {
			switch msg.Type {
			case tea.KeyEnter:
				req, err := parseEvalInput(m.evalInput.Value())
				if err == nil && m.evaluate != nil {
					go m.evaluate(req)
				}
				m.evalDialog = false
				m.updateViewportHeight()
			case tea.KeyEsc:
				m.evalDialog = false
				m.updateViewportHeight()
			default:
				var cmd tea.Cmd
				m.evalInput, cmd = m.evalInput.Update(msg)
				return m, cmd
			}
			return m, nil
		}
		if m.help {
			switch msg.String() {
			case "?", "h", "esc":
				m.help = false
				m.updateViewportHeight()
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "e":
			m.evalInput = textinput.New()
			m.evalInput.Placeholder = "vessel,fuel,speed,distance,foul,wind,solar,co2price"
			val := fallbackEvalInput
			if m.haveRow {
				val = fmt.Sprintf("%s,%s,%.1f,%.0f,%.0f,%.0f,%.0f,%.0f",
					m.lastRow.VesselKey, m.lastRow.FuelKey, m.lastRow.SpeedKn, m.lastRow.DistanceNM,
					m.lastRow.HullFoulingPct, m.lastRow.WindAssistPct, m.lastRow.SolarAssistPct, m.lastRow.CarbonPriceUSDT)
			}
			m.evalInput.SetValue(val)
			m.evalInput.CursorEnd()
			m.evalInput.Focus()
			m.evalDialog = true
			m.updateViewportHeight()
			return m, nil
		case "w":
			m.wrap = !m.wrap
			m.refreshViewport()
			return m, nil
		case "s":
			m.autoscroll = !m.autoscroll
			if m.autoscroll {
				m.vp.GotoBottom()
			}
			return m, nil
		case "c":
			m.showChart = !m.showChart
			m.updateViewportHeight()
			return m, nil
		case "t":
			m.summary = !m.summary
			m.updateViewportHeight()
			return m, nil
		case "h", "?":
			m.help = !m.help
			m.updateViewportHeight()
			return m, nil
		}
		if !m.autoscroll {
			switch msg.String() {
			case "j", "down":
				m.vp.LineDown(1)
			case "k", "up":
				m.vp.LineUp(1)
			case "pgdown", "ctrl+n":
				m.vp.LineDown(10)
			case "pgup", "ctrl+p":
				m.vp.LineUp(10)
			default:
				var cmd tea.Cmd
				m.vp, cmd = m.vp.Update(msg)
				return m, cmd
			}
			return m, nil
		}
		return m, nil
	case rowMsg:
		m.logs = append(m.logs, msg.line)
		if len(m.logs) > 1000 {
			m.logs = m.logs[len(m.logs)-1000:]
		}
		m.lastRow = msg.row
		m.haveRow = true
		m.scenarios++
		if msg.row.Cached {
			m.cachedHits++
		}
		m.totalCO2 += msg.row.CO2Tonnes
		m.totalSpend += msg.row.TotalSpendUSD
		m.fuelCounts[msg.row.FuelKey]++
		m.updateViewportHeight()
		m.refreshViewport()
	case setEvalMsg:
		m.evaluate = msg.fn
	}
	return m, nil
}

func (m *tuiModel) updateViewportHeight() {
	bottomHeight := lipgloss.Height(m.renderBottom())
	chartHeight := 0
	if m.showChart {
		chartHeight = lipgloss.Height(m.renderChart())
	}
	dialogHeight := 0
	if m.evalDialog {
		dialogHeight = 1
	}
	h := m.height - m.headerHeight - bottomHeight - chartHeight - dialogHeight - 4
	if h < 0 {
		h = 0
	}
	m.vp.Height = h
	if m.autoscroll {
		m.vp.GotoBottom()
	}
}

func (m *tuiModel) refreshViewport() {
	var lines []string
	for _, l := range m.logs {
		if m.wrap {
			lines = append(lines, wordwrap.String(l, m.vp.Width))
		} else {
			lines = append(lines, l)
		}
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	if m.autoscroll {
		m.vp.GotoBottom()
	}
}

func (m tuiModel) View() string {
	if m.help {
		return m.renderHelp()
	}
	bottom := m.renderBottom()
	divider := strings.Repeat("─", m.vp.Width)
	sections := []string{
		m.header,
		divider,
		m.vp.View(),
	}
	if m.showChart {
		sections = append(sections, divider, m.renderChart())
	}
	if m.evalDialog {
		sections = append(sections, divider,
			fmt.Sprintf("Evaluate (vessel,fuel,speed,distance,foul,wind,solar,co2price) - Enter to run, Esc to cancel: %s", m.evalInput.View()))
	}
	sections = append(sections, divider, bottom)
	return strings.Join(sections, "\n")
}

func (m tuiModel) renderHeader() string {
	tableView := m.table.View()
	fuelsWidth := m.vp.Width/2 - 1
	fuels := renderFuelTree(m.cat, m.fuelColors, m.wrap, fuelsWidth)
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("│")
	return lipgloss.JoinHorizontal(lipgloss.Top, tableView, sep, fuels)
}

func renderFuelTree(cat *catalog.Catalog, colors map[string]string, wrap bool, width int) string {
	var b strings.Builder
	b.WriteString("Fuels\n")
	fuels := cat.Fuels()
	for i, f := range fuels {
		prefix := "├─"
		if i == len(fuels)-1 {
			prefix = "└─"
		}
		c := colors[f.Label]
		line := fmt.Sprintf("%s %s%s%s co2=%.0fkg/t price=$%.0f/t", prefix, c, f.Label, colorReset, f.CO2FactorKgT, f.PriceUSDT)
		if f.NonCombustion {
			line += " (non-combustion)"
		}
		if wrap && width > 0 {
			line = wordwrap.String(line, width)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderChart draws the cost breakdown of the latest scenario as
// horizontal bars.
func (m tuiModel) renderChart() string {
	if !m.haveRow {
		return "Cost breakdown: none"
	}
	maxSpend := math.Max(m.lastRow.FuelSpendUSD, m.lastRow.CarbonSpendUSD)
	barWidth := maxChartBarWidth
	if m.vp.Width > 0 && m.vp.Width/2 < barWidth {
		barWidth = m.vp.Width / 2
	}
	bar := func(v float64) string {
		if maxSpend <= 0 {
			return ""
		}
		n := int(math.Round(v / maxSpend * float64(barWidth)))
		return strings.Repeat("█", n)
	}
	var b strings.Builder
	b.WriteString("Cost breakdown:\n")
	b.WriteString(fmt.Sprintf("  Fuel   %s$%11.0f%s %s%s%s\n", colorWhite, m.lastRow.FuelSpendUSD, colorReset, colorYellow, bar(m.lastRow.FuelSpendUSD), colorReset))
	b.WriteString(fmt.Sprintf("  Carbon %s$%11.0f%s %s%s%s\n", colorWhite, m.lastRow.CarbonSpendUSD, colorReset, colorMagenta, bar(m.lastRow.CarbonSpendUSD), colorReset))
	b.WriteString(fmt.Sprintf("  Total  %s$%11.0f%s  %s%.6f USD/t-mile%s", colorWhite, m.lastRow.TotalSpendUSD, colorReset, colorGray, m.lastRow.USDPerTonneMile, colorReset))
	return b.String()
}

func (m tuiModel) renderSummary() string {
	var fuelParts []string
	for _, label := range m.cat.FuelLabels() {
		if n := m.fuelCounts[label]; n > 0 {
			c := m.fuelColors[label]
			fuelParts = append(fuelParts, fmt.Sprintf("%s%s%s=%d", c, label, colorReset, n))
		}
	}
	summary := fmt.Sprintf("%sSUMMARY%s %sscenarios=%d%s %scached=%d%s %sco2_t=%.1f%s %sspend=$%.0f%s",
		colorBlue, colorReset,
		colorGreen, m.scenarios, colorReset,
		colorGray, m.cachedHits, colorReset,
		colorMagenta, m.totalCO2, colorReset,
		colorWhite, m.totalSpend, colorReset)
	if len(fuelParts) > 0 {
		summary = fmt.Sprintf("%s [%s]", summary, strings.Join(fuelParts, " "))
	}
	return summary
}

func (m tuiModel) renderBottom() string {
	wrapColor := lipgloss.Color("9")
	if m.wrap {
		wrapColor = lipgloss.Color("10")
	}
	scrollColor := lipgloss.Color("10")
	if !m.autoscroll {
		scrollColor = lipgloss.Color("9")
	}
	chartColor := lipgloss.Color("9")
	if m.showChart {
		chartColor = lipgloss.Color("10")
	}
	summaryColor := lipgloss.Color("9")
	if m.summary {
		summaryColor = lipgloss.Color("10")
	}
	wrapIndicator := lipgloss.NewStyle().Foreground(wrapColor).Render("●")
	scrollIndicator := lipgloss.NewStyle().Foreground(scrollColor).Render("●")
	chartIndicator := lipgloss.NewStyle().Foreground(chartColor).Render("●")
	summaryIndicator := lipgloss.NewStyle().Foreground(summaryColor).Render("●")
	line := fmt.Sprintf("Wrap %s | Scroll %s | Chart %s | Summary %s | e evaluate | h help | q quit",
		wrapIndicator, scrollIndicator, chartIndicator, summaryIndicator)
	if m.summary {
		return fmt.Sprintf("%s\n%s", m.renderSummary(), line)
	}
	return line
}

func (m tuiModel) renderHelp() string {
	lines := []string{
		"Key Bindings:",
		" q  quit",
		" e  evaluate scenario (vessel,fuel,speed,distance,foul,wind,solar,co2price)",
		" w  toggle wrap for scenario log",
		" s  toggle auto-scroll",
		" c  toggle cost breakdown chart",
		" t  toggle summary footer",
		" h/? toggle this help view",
		"",
		"When auto-scroll is disabled:",
		" j/k or up/down    scroll one line",
		" pgdown/pgup       scroll a page",
	}
	return strings.Join(lines, "\n")
}

func parseEvalInput(val string) (voyage.Request, error) {
	parts := strings.Split(val, ",")
	if len(parts) < 8 {
		return voyage.Request{}, fmt.Errorf("expected vessel,fuel,speed,distance,foul,wind,solar,co2price")
	}
	nums := make([]float64, 6)
	for i, p := range parts[2:8] {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return voyage.Request{}, err
		}
		nums[i] = f
	}
	return voyage.Request{
		VesselKey:       strings.TrimSpace(parts[0]),
		FuelKey:         strings.TrimSpace(parts[1]),
		SpeedKn:         nums[0],
		DistanceNM:      nums[1],
		HullFoulingPct:  nums[2],
		WindAssistPct:   nums[3],
		SolarAssistPct:  nums[4],
		CarbonPriceUSDT: nums[5],
	}, nil
}
