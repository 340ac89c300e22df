package render

import (
	"fmt"

	"github.com/deepdig/deepdig/internal/game"
	"github.com/deepdig/deepdig/internal/world"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	CellWidth    = 16
	CellHeight   = 16
	GridCols     = ScreenWidth / CellWidth   // 80
	GridRows     = ScreenHeight / CellHeight // 45

	// Pixel origin of the cave-in canvas; its header sits one row above.
	CaveInX = 28 * CellWidth
	CaveInY = 14 * CellHeight

	Title = "Deep Dig"
)

// Key labels, in catalog order. The host binds the same keys.
const (
	EquipmentKeys = "1234567"
	UpgradeKeys   = "QWERTY"
	SkillKeys     = "ZXCVB"
)

// Fixed panel positions.
const (
	leftX     = 2
	rightX    = 42
	statsRow  = 2
	oreRow    = 13
	equipRow  = 2
	upgRow    = 11
	skillRow  = 19
	logRow    = 27
	logMax    = 15
	barWidth  = 20
	footerRow = GridRows - 1
)

// DrawHUD composes the whole screen for one snapshot.
func DrawHUD(buf *CellBuffer, snap game.Snapshot) {
	buf.Clear()
	p := snap.Player

	buf.WriteString(leftX, 0, Title, ColorWhite, ColorBlack)
	cur := world.Resource(p.CurrentResource())
	buf.WriteString(16, 0, fmt.Sprintf("[ %s  digging %s ]", Meters(p.Depth), cur.Name), ColorLightCyan, ColorBlack)

	drawStats(buf, &p)
	drawResources(buf, &p)
	drawEquipment(buf, &p)
	drawUpgrades(buf, &p)
	drawSkills(buf, &p)
	drawLog(buf, snap.Messages)
	if snap.CaveIn != nil {
		drawCaveInHeader(buf, snap.CaveIn)
	}

	buf.WriteString(leftX, footerRow,
		"SPACE/Click: Mine  S: Sell all  1-7 Gear  Q-Y Research  Z-B Skills  ESC: Quit",
		ColorDarkGray, ColorBlack)
}

func heading(buf *CellBuffer, x, y int, s string) {
	buf.WriteString(x, y, "--- "+s+" ---", ColorLightCyan, ColorBlack)
}

func drawStats(buf *CellBuffer, p *game.PlayerState) {
	heading(buf, leftX, statsRow, "Miner")
	row := statsRow + 1
	line := func(label, value string, clr uint8) {
		buf.WriteString(leftX, row, fmt.Sprintf("%-12s", label), ColorLightGray, ColorBlack)
		buf.WriteString(leftX+12, row, value, clr, ColorBlack)
		row++
	}

	line("Level", fmt.Sprintf("%d", p.Level), ColorWhite)
	buf.WriteString(leftX, row, "XP", ColorLightGray, ColorBlack)
	frac := 0.0
	if p.ExperienceToNext > 0 {
		frac = p.Experience / p.ExperienceToNext
	}
	buf.Bar(leftX+12, row, barWidth, frac, ColorLightGreen)
	row++
	buf.WriteString(leftX+12, row, fmt.Sprintf("%s / %s", Qty(p.Experience), Qty(p.ExperienceToNext)), ColorDarkGray, ColorBlack)
	row++

	pointsClr := uint8(ColorLightGray)
	if p.SkillPoints > 0 {
		pointsClr = ColorLightGreen
	}
	line("Skill pts", Count(p.SkillPoints), pointsClr)
	line("Cash", Money(p.Currency), ColorYellow)
	line("Click", Qty(p.ClickPower*p.Multipliers.Click), ColorWhite)
	line("Auto/s", Qty(p.AutoMineRate*p.Multipliers.Auto), ColorWhite)
	line("Efficiency", fmt.Sprintf("x%.2f", p.Multipliers.Efficiency), ColorWhite)
	line("Mined", Qty(p.TotalMined), ColorWhite)
}

func drawResources(buf *CellBuffer, p *game.PlayerState) {
	heading(buf, leftX, oreRow, "Ore")
	cur := p.CurrentResource()
	for i, r := range world.Resources() {
		y := oreRow + 1 + i
		if p.Depth < r.UnlockDepth && p.Resources[r.Kind] == 0 {
			buf.WriteString(leftX, y, fmt.Sprintf("  %-8s below %s", r.Name, Meters(r.UnlockDepth)), ColorDarkGray, ColorBlack)
			continue
		}
		marker := "  "
		if r.Kind == cur {
			marker = "> "
		}
		x := buf.WriteString(leftX, y, marker+fmt.Sprintf("%-8s", r.Name), ResourceColor(r.Kind), ColorBlack)
		buf.WriteString(x, y, fmt.Sprintf("%10s @ %s", Qty(p.Resources[r.Kind]), Money(r.Value*p.Multipliers.SellPrice)),
			ColorLightGray, ColorBlack)
	}
}

func affordColor(ok bool) uint8 {
	if ok {
		return ColorLightGreen
	}
	return ColorDarkGray
}

func drawEquipment(buf *CellBuffer, p *game.PlayerState) {
	heading(buf, rightX, equipRow, "Gear")
	for i, t := range world.EquipmentTemplates {
		y := equipRow + 1 + i
		cost, _ := p.EquipmentCost(t.Kind)
		kind := "clk"
		if t.Category == world.CategoryAutomation {
			kind = "aut"
		}
		clr := affordColor(p.Currency >= cost)
		buf.WriteString(rightX, y, fmt.Sprintf("[%c] %-13s x%-2d %4s %s %s",
			EquipmentKeys[i], t.Name, p.Equipment[t.Kind], "+"+Qty(t.Power), kind, Money(cost)), clr, ColorBlack)
	}
}

func drawUpgrades(buf *CellBuffer, p *game.PlayerState) {
	heading(buf, rightX, upgRow, "Research")
	for k := world.UpgradeKind(0); k < world.UpgradeCount; k++ {
		t := world.Upgrade(k)
		cost, _ := p.UpgradeCost(k)
		clr := affordColor(p.Currency >= cost)
		buf.WriteString(rightX, upgRow+1+int(k), fmt.Sprintf("[%c] %-20s L%-2d %s",
			UpgradeKeys[k], t.Name, p.Upgrades[k], Money(cost)), clr, ColorBlack)
	}
}

func drawSkills(buf *CellBuffer, p *game.PlayerState) {
	heading(buf, rightX, skillRow, "Skills")
	for id := world.SkillID(0); id < world.SkillCount; id++ {
		n := world.Skill(id)
		cost, _ := p.SkillCost(id)
		status := fmt.Sprintf("%dpt", cost)
		switch {
		case p.Skills[id] >= n.MaxLevel:
			status = "max"
		case !p.SkillUnlocked(id):
			status = "locked"
		}
		clr := affordColor(p.CanSpendSkill(id))
		buf.WriteString(rightX, skillRow+1+int(id), fmt.Sprintf("[%c] %-16s %2d/%-2d %s",
			SkillKeys[id], n.Name, p.Skills[id], n.MaxLevel, status), clr, ColorBlack)
	}
}

func drawLog(buf *CellBuffer, msgs []game.Message) {
	heading(buf, leftX, logRow, "Shaft Log")
	if len(msgs) > logMax {
		msgs = msgs[len(msgs)-logMax:]
	}
	for i, m := range msgs {
		buf.WriteString(leftX, logRow+1+i, m.Text, PriorityColor(m.Priority), ColorBlack)
	}
}

func drawCaveInHeader(buf *CellBuffer, v *game.MinigameView) {
	col := CaveInX / CellWidth
	row := CaveInY/CellHeight - 1
	width := int(v.CanvasWidth) / CellWidth
	buf.ClearRect(col, row, width, int(v.CanvasHeight)/CellHeight+2)

	var text string
	clr := uint8(ColorLightRed)
	switch v.Outcome {
	case game.OutcomeWon:
		text, clr = "You dug yourself out! [ESC]", ColorLightGreen
	case game.OutcomeLost:
		text = "Buried! [ESC]"
	default:
		text = fmt.Sprintf("CAVE-IN! %ds  x%.1f  <- ->", v.RemainingSeconds, v.Difficulty)
	}
	buf.WriteString(col, row, text, clr, ColorBlack)
}
