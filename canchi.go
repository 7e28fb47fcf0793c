package amlich

// Stem is one of the ten heavenly stems (Can).
type Stem int

// Branch is one of the twelve earthly branches (Chi).
type Branch int

// Heavenly stems in cycle order.
const (
	Giap Stem = iota
	At
	Binh
	Dinh
	Mau
	Ky
	Canh
	Tan
	Nham
	Quy
)

// Earthly branches in cycle order.
const (
	Ty Branch = iota
	Suu
	Dan
	Mao
	Thin
	Ti
	Ngo
	Mui
	Than
	Dau
	Tuat
	Hoi
)

var stemNames = [10]string{"Giáp", "Ất", "Bính", "Đinh", "Mậu", "Kỷ", "Canh", "Tân", "Nhâm", "Quý"}

var branchNames = [12]string{"Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ", "Ngọ", "Mùi", "Thân", "Dậu", "Tuất", "Hợi"}

// Vietnamese reading of the animals: Sửu is the buffalo, Mão the cat.
var branchAnimals = [12]string{"Rat", "Buffalo", "Tiger", "Cat", "Dragon", "Snake", "Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig"}

// String returns the Vietnamese name of the stem, e.g. "Giáp".
func (s Stem) String() string { return stemNames[floorMod(int(s), 10)] }

// String returns the Vietnamese name of the branch, e.g. "Tý".
func (b Branch) String() string { return branchNames[floorMod(int(b), 12)] }

// Animal returns the English name of the zodiac animal of the branch.
func (b Branch) Animal() string { return branchAnimals[floorMod(int(b), 12)] }

// YearStem returns the heavenly stem of a lunar year. The cycle starts at
// Giáp in year 4.
func YearStem(lunarYear int) Stem { return Stem(floorMod(lunarYear-4, 10)) }

// YearBranch returns the earthly branch of a lunar year. The cycle starts
// at Tý in year 4.
func YearBranch(lunarYear int) Branch { return Branch(floorMod(lunarYear-4, 12)) }

// ZodiacAnimal returns the branch name of a lunar year, which names its
// animal ("Tý" for 2020). Use [YearBranch] and [Branch.Animal] for the
// English name.
func ZodiacAnimal(lunarYear int) string { return YearBranch(lunarYear).String() }

// StemBranchName returns the sexagenary name of a lunar year, such as
// "Quý Mão" for 2023.
func StemBranchName(lunarYear int) string {
	return YearStem(lunarYear).String() + " " + YearBranch(lunarYear).String()
}

// MonthStemBranch returns the sexagenary name of a lunar month. A leap
// month shares the name of the month it repeats.
func MonthStemBranch(month, lunarYear int) string {
	return Stem(floorMod(lunarYear*12+month+3, 10)).String() + " " + Branch(floorMod(month+1, 12)).String()
}

// DayStemBranch returns the sexagenary name of the day with Julian day
// number jd.
func DayStemBranch(jd int) string {
	return Stem(floorMod(jd+9, 10)).String() + " " + Branch(floorMod(jd+1, 12)).String()
}
