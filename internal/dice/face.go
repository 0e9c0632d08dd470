package dice

import "strconv"

// ImageKey names one of the six base face images.
type ImageKey string

const (
	Face1 ImageKey = "dice_1"
	Face2 ImageKey = "dice_2"
	Face3 ImageKey = "dice_3"
	Face4 ImageKey = "dice_4"
	Face5 ImageKey = "dice_5"
	Face6 ImageKey = "dice_6"
)

// BaseFaces lists the six face images in pip order.
var BaseFaces = []ImageKey{Face1, Face2, Face3, Face4, Face5, Face6}

// FaceImageKey maps a rolled value to a face image. Only six images exist,
// so values above six wrap around: 7 shows as 1, 13 as 1, 20 as 2.
// Values outside [1, sides] are clamped into range first.
func FaceImageKey(t DieType, value int) ImageKey {
	if value < 1 {
		value = 1
	}
	if sides := t.Sides(); sides > 0 && value > sides {
		value = sides
	}
	return ImageKey("dice_" + strconv.Itoa((value-1)%len(BaseFaces)+1))
}

// Pips returns the number of pips drawn on the face, 1 through 6, or 0
// for a key outside BaseFaces.
func (k ImageKey) Pips() int {
	for i, f := range BaseFaces {
		if f == k {
			return i + 1
		}
	}
	return 0
}
