package richtext

// familySlots is the number of addressable fonts in a family, bounded by
// the four family bits in a Style.
const familySlots = 16

// Family groups up to sixteen fonts addressable from markup with [@Name].
// Slot zero holds the primary font and backs every empty slot. Names are
// case-folded, so [@Mono], [@mono], and [@MONO] select the same slot. All
// member fonts share the family, so a style carrying a family index
// resolves to the same font no matter which member measures it.
type Family struct {
	fonts   [familySlots]*Font
	indexes map[string]int
	names   []string
	count   int
}

// NewFamily returns a family with primary installed in slot zero under the
// given name.
func NewFamily(name string, primary *Font) *Family {
	fam := &Family{indexes: make(map[string]int)}
	fam.fonts[0] = primary
	fam.indexes[foldName(name)] = 0
	fam.names = append(fam.names, name)
	fam.count = 1
	primary.family = fam
	return fam
}

// Add installs f in the next free slot under name. Names should be unique
// after case folding; a colliding name rebinds the lookup to the new slot.
// It returns ErrFamilyFull once all slots are used.
func (fam *Family) Add(name string, f *Font) error {
	if fam.count >= familySlots {
		return ErrFamilyFull
	}
	i := fam.count
	fam.fonts[i] = f
	fam.indexes[foldName(name)] = i
	fam.names = append(fam.names, name)
	fam.count++
	f.family = fam
	return nil
}

// Size returns the number of installed fonts.
func (fam *Family) Size() int { return fam.count }

// Names returns the registered names in installation order.
func (fam *Family) Names() []string {
	out := make([]string, len(fam.names))
	copy(out, fam.names)
	return out
}

// IndexOf returns the slot of the named font. The name is case-folded
// before lookup.
func (fam *Family) IndexOf(name string) (int, bool) {
	i, ok := fam.indexes[foldName(name)]
	return i, ok
}

// Resolve returns the named font, or an UnknownFamilyError.
func (fam *Family) Resolve(name string) (*Font, error) {
	i, ok := fam.indexes[foldName(name)]
	if !ok {
		return nil, &UnknownFamilyError{Name: name}
	}
	return fam.fonts[i], nil
}

// fontAt returns the font in slot i, falling back to the primary font for
// out-of-range or empty slots.
func (fam *Family) fontAt(i int) *Font {
	if i < 0 || i >= familySlots || fam.fonts[i] == nil {
		return fam.fonts[0]
	}
	return fam.fonts[i]
}
