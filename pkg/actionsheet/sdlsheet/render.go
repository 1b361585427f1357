package sdlsheet

import (
	"fmt"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/sdlsheet/internal"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/view"
	"github.com/google/uuid"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	maxLandscapeWidthRatio       = 0.66
	iconPadding            int32 = 12
	scrollIndicatorWidth   int32 = 4
	pairGap                int32 = 12
	rowCornerRadius        int32 = 8
)

var sheetPadding = internal.Padding{
	Top:    constants.SheetInset,
	Right:  constants.SheetInset,
	Bottom: constants.SheetBottomInset,
	Left:   constants.SheetInset,
}

type rowHit struct {
	rect sdl.Rect
	id   uuid.UUID
}

// sheetLayout draws a view.Model and remembers where rows ended up for mouse hits.
type sheetLayout struct {
	renderer  *sdl.Renderer
	textures  *internal.TextureCache
	padding   internal.Padding
	sheetRect sdl.Rect
	hits      []rowHit
}

func newSheetLayout(renderer *sdl.Renderer) *sheetLayout {
	return &sheetLayout{
		renderer: renderer,
		textures: internal.NewTextureCache(),
		padding:  sheetPadding,
	}
}

func (l *sheetLayout) destroy() {
	l.textures.Destroy()
}

func (l *sheetLayout) hit(point sdl.Point) (uuid.UUID, bool) {
	for _, h := range l.hits {
		if point.InRect(&h.rect) {
			return h.id, true
		}
	}
	return uuid.Nil, false
}

type headerLines struct {
	title   []string
	message []string
	height  int32
}

func (l *sheetLayout) render(window *internal.Window, model *view.Model) error {
	theme := internal.GetTheme()
	windowW, windowH := window.GetWidth(), window.GetHeight()
	landscape := window.IsLandscape()

	window.RenderBackground()
	l.renderer.SetDrawColor(0, 0, 0, constants.BackgroundDimAlpha)
	l.renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: windowW, H: windowH})

	titleFont, err := internal.Font("", constants.DefaultTitleFontSize)
	if err != nil {
		return err
	}
	messageFont, err := internal.Font("", constants.DefaultMessageFontSize)
	if err != nil {
		return err
	}

	sheetW := windowW
	if landscape {
		sheetW = int32(float64(windowW) * maxLandscapeWidthRatio)
	}
	contentW := sheetW - l.padding.Horizontal()

	header := model.Header()
	lines := l.measureHeader(header, titleFont, messageFont, contentW)

	rows := model.Rows()
	rowHeight := l.rowHeight(rows)
	rowCount := len(rows)
	if model.IsPaired() {
		rowCount = 1
	}

	maxRatio := constants.PortraitMaxHeightRatio
	if landscape {
		maxRatio = constants.LandscapeMaxHeightRatio
	}
	maxSheetH := int32(float64(windowH) * maxRatio)

	rowsAvailable := maxSheetH - l.padding.Vertical() - lines.height
	maxRows := int(rowsAvailable / (rowHeight + constants.RowSpacing))
	if maxRows < 1 {
		maxRows = 1
	}

	start, end := 0, rowCount
	overflow := false
	if !model.IsPaired() {
		start, end = model.VisibleRange(maxRows)
		overflow = end-start < len(rows)
	}
	shown := int32(end - start)

	sheetH := l.padding.Vertical() + lines.height + shown*rowHeight + max(shown-1, 0)*constants.RowSpacing
	l.sheetRect = sdl.Rect{X: (windowW - sheetW) / 2, Y: windowH - sheetH, W: sheetW, H: sheetH}

	radius := int32(model.Appearance().CornerRadius)
	internal.FillTopRoundedRect(l.renderer, l.sheetRect, radius, theme.SheetColor)

	x := l.sheetRect.X + l.padding.Left
	y := l.sheetRect.Y + l.padding.Top
	y, err = l.renderHeader(header, lines, titleFont, messageFont, x, y, contentW)
	if err != nil {
		return err
	}

	l.hits = l.hits[:0]
	if model.IsPaired() {
		err = l.renderPair(rows, x, y, contentW, rowHeight)
	} else {
		err = l.renderRows(rows[start:end], x, y, contentW)
	}
	if err != nil {
		return err
	}

	if overflow && model.ScrollIndicatorsVisible() {
		l.renderScrollIndicator(start, end, len(rows), y, shown*(rowHeight+constants.RowSpacing), theme.AccentColor)
	}

	window.Present()
	return nil
}

func (l *sheetLayout) measureHeader(header view.Header, titleFont, messageFont *ttf.Font, width int32) headerLines {
	var lines headerLines
	if header.ShowTitle {
		lines.title = internal.WrapText(titleFont, header.Title, width)
		lines.height += int32(len(lines.title))*internal.LineHeight(titleFont) + constants.TitleSpacing
	}
	if header.ShowMessage {
		lines.message = internal.WrapText(messageFont, header.Message, width)
		lines.height += int32(len(lines.message))*internal.LineHeight(messageFont) + constants.MessageSpacing
	}
	if header.ShowDivider {
		lines.height += constants.DividerSpacing
	}
	return lines
}

func (l *sheetLayout) renderHeader(header view.Header, lines headerLines, titleFont, messageFont *ttf.Font, x, y, width int32) (int32, error) {
	theme := internal.GetTheme()

	for _, line := range lines.title {
		if err := l.renderText(titleFont, line, theme.TextColor, header.Alignment, x, y, width); err != nil {
			return y, err
		}
		y += internal.LineHeight(titleFont)
	}
	if header.ShowTitle {
		y += constants.TitleSpacing
	}

	for _, line := range lines.message {
		if err := l.renderText(messageFont, line, theme.HintColor, header.Alignment, x, y, width); err != nil {
			return y, err
		}
		y += internal.LineHeight(messageFont)
	}
	if header.ShowMessage {
		y += constants.MessageSpacing
	}

	if header.ShowDivider {
		internal.HorizontalLine(l.renderer, x, x+width, y-constants.DividerSpacing/2, theme.DividerColor)
	}
	return y, nil
}

func (l *sheetLayout) rowHeight(rows []view.Row) int32 {
	height := constants.DefaultButtonHeight
	for _, r := range rows {
		if r.Entry.Height > height {
			height = r.Entry.Height
		}
	}
	return height
}

func (l *sheetLayout) renderRows(rows []view.Row, x, y, width int32) error {
	for _, row := range rows {
		rect := sdl.Rect{X: x, Y: y, W: width, H: row.Entry.Height}
		if err := l.renderRow(row, rect); err != nil {
			return err
		}
		y += row.Entry.Height + constants.RowSpacing
	}
	return nil
}

func (l *sheetLayout) renderPair(rows []view.Row, x, y, width, height int32) error {
	half := (width - pairGap) / 2
	for i, row := range rows {
		rect := sdl.Rect{X: x + int32(i)*(half+pairGap), Y: y, W: half, H: height}
		if err := l.renderRow(row, rect); err != nil {
			return err
		}
	}
	return nil
}

func (l *sheetLayout) renderRow(row view.Row, rect sdl.Rect) error {
	theme := internal.GetTheme()
	action := row.Entry.Action

	textColor := theme.TextColor
	if action.Style().Kind() == actionsheet.StyleKindCancel {
		textColor = theme.AccentColor
	}
	switch {
	case !row.Enabled:
		textColor = theme.HintColor
	case row.Focused:
		internal.FillRoundedRect(l.renderer, rect, rowCornerRadius, theme.HighlightColor)
		textColor = theme.HighlightedTextColor
	}

	font, err := internal.Font(row.Entry.Font.Path, row.Entry.Font.Size)
	if err != nil {
		return err
	}

	textX, textW := rect.X+iconPadding, rect.W-2*iconPadding
	if icon := action.Icon(); len(icon) > 0 {
		size := int32(font.Height())
		texture, err := l.iconTexture(action, size)
		if err != nil {
			actionsheet.GetInternalLogger().Warn("Failed to draw action icon", "title", action.Title(), "error", err)
		} else {
			dst := sdl.Rect{X: textX, Y: rect.Y + (rect.H-size)/2, W: size, H: size}
			l.renderer.Copy(texture, nil, &dst)
			textX += size + iconPadding
			textW -= size + iconPadding
		}
	}

	textY := rect.Y + (rect.H-int32(font.Height()))/2
	if err := l.renderText(font, action.Title(), textColor, row.Entry.Alignment, textX, textY, textW); err != nil {
		return err
	}

	l.hits = append(l.hits, rowHit{rect: rect, id: action.ID()})
	return nil
}

func (l *sheetLayout) renderText(font *ttf.Font, text string, color sdl.Color, align constants.TextAlign, x, y, width int32) error {
	if text == "" {
		return nil
	}

	key := fmt.Sprintf("text|%p|%v|%s", font, color, text)
	texture, err := l.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
		return internal.TextTexture(l.renderer, font, text, color)
	})
	if err != nil {
		return err
	}

	w, h := internal.TextureSize(texture)
	src := &sdl.Rect{X: 0, Y: 0, W: min(w, width), H: h}
	dst := &sdl.Rect{X: internal.AlignedX(align, x, width, src.W), Y: y, W: src.W, H: h}
	return l.renderer.Copy(texture, src, dst)
}

func (l *sheetLayout) iconTexture(action *actionsheet.Action, size int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("icon|%s|%d", action.ID(), size)
	return l.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
		return internal.IconTexture(l.renderer, action.Icon(), size)
	})
}

func (l *sheetLayout) renderScrollIndicator(start, end, total int, top, height int32, color sdl.Color) {
	if total == 0 {
		return
	}

	barH := max(height*int32(end-start)/int32(total), scrollIndicatorWidth*2)
	barY := top + (height-barH)*int32(start)/int32(max(total-(end-start), 1))
	rect := sdl.Rect{
		X: l.sheetRect.X + l.sheetRect.W - l.padding.Right/2 - scrollIndicatorWidth/2,
		Y: barY,
		W: scrollIndicatorWidth,
		H: barH,
	}
	internal.FillRoundedRect(l.renderer, rect, scrollIndicatorWidth/2, color)
}
