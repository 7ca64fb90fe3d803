package firstx

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

type TouchInfo struct {
	TouchID eb.TouchID

	StartedTime time.Duration
	StartedPos  FPoint

	// position in the previous tick
	LastPos FPoint

	Dragged bool
}

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	TouchInfos map[eb.TouchID]TouchInfo

	TouchingBuf     []eb.TouchID
	JustTouchedBuf  []eb.TouchID
	JustReleasedBuf []eb.TouchID

	// how far touches moved since the previous tick
	TouchDelta FPoint
}

func InitInputManager() {
	im := &TheInputManager

	im.TouchInfos = make(map[eb.TouchID]TouchInfo)
}

func UpdateInput() {
	im := &TheInputManager

	// touches released in the previous tick are kept around
	// for one tick so taps can still be checked
	for _, touchId := range im.JustReleasedBuf {
		delete(im.TouchInfos, touchId)
	}

	// =============================
	// update touch buffers
	// =============================
	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])
	im.JustTouchedBuf = ebi.AppendJustPressedTouchIDs(im.JustTouchedBuf[:0])
	im.JustReleasedBuf = ebi.AppendJustReleasedTouchIDs(im.JustReleasedBuf[:0])

	// =============================
	// update touch infos
	// =============================
	for _, touchId := range im.JustTouchedBuf {
		pos := TouchFPt(touchId)
		im.TouchInfos[touchId] = TouchInfo{
			TouchID:     touchId,
			StartedTime: GlobalTimerNow(),
			StartedPos:  pos,
			LastPos:     pos,
		}
	}

	const dragDistance = 15

	im.TouchDelta = FPoint{}

	for _, touchId := range im.TouchingBuf {
		info, ok := im.TouchInfos[touchId]
		if !ok {
			continue
		}

		curPos := TouchFPt(touchId)
		if info.StartedPos.Sub(curPos).LengthSquared() > dragDistance*dragDistance {
			info.Dragged = true
		}
		if info.Dragged {
			im.TouchDelta = im.TouchDelta.Add(curPos.Sub(info.LastPos))
		}
		info.LastPos = curPos

		im.TouchInfos[touchId] = info
	}
}

// IsTouchJustTapped reports a released touch inside rect that never dragged.
func IsTouchJustTapped(rect FRectangle) bool {
	im := &TheInputManager

	for _, touchId := range im.JustReleasedBuf {
		x, y := ebi.TouchPositionInPreviousTick(touchId)
		if !FPt(f64(x), f64(y)).In(rect) {
			continue
		}
		if info, ok := im.TouchInfos[touchId]; ok && info.Dragged {
			continue
		}
		return true
	}

	return false
}

func IsMouseButtonPressed(button eb.MouseButton) bool {
	return eb.IsMouseButtonPressed(button)
}

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsMouseButtonJustReleased(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustReleased(button)
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		delete(keyRepeatMap, key)
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}

func IsControlPressed() bool {
	return IsKeyPressed(eb.KeyControl) || IsKeyPressed(eb.KeyMeta)
}
