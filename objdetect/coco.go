// Package objdetect names the object classes detected by COCO-trained
// models.
package objdetect

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CocoItemType is one of the 80 COCO object classes, numbered in the order
// COCO-trained detectors emit them.
type CocoItemType int

const (
	Person CocoItemType = iota
	Bicycle
	Car
	Motorbike
	Airplane
	Bus
	Train
	Truck
	Boat
	TrafficLight
	FireHydrant
	StopSign
	ParkingMeter
	Bench
	Bird
	Cat
	Dog
	Horse
	Sheep
	Cow
	Elephant
	Bear
	Zebra
	Giraffe
	Backpack
	Umbrella
	Handbag
	Tie
	Suitcase
	Frisbee
	Skis
	Snowboard
	SportsBall
	Kite
	BaseballBat
	BaseballGlove
	Skateboard
	Surfboard
	TennisRacket
	Bottle
	WineGlass
	Cup
	Fork
	Knife
	Spoon
	Bowl
	Banana
	Apple
	Sandwich
	Orange
	Broccoli
	Carrot
	HotDog
	Pizza
	Donut
	Cake
	Chair
	Sofa
	PottedPlant
	Bed
	DiningTable
	Toilet
	TVMonitor
	Laptop
	Mouse
	Remote
	Keyboard
	CellPhone
	Microwave
	Oven
	Toaster
	Sink
	Refrigerator
	Book
	Clock
	Vase
	Scissors
	TeddyBear
	HairDrier
	Toothbrush

	// NumCocoItemTypes is the number of classes.
	NumCocoItemTypes = int(iota)
)

var cocoNames = [NumCocoItemTypes]string{
	"person", "bicycle", "car", "motorbike", "airplane",
	"bus", "train", "truck", "boat", "traffic_light",
	"fire_hydrant", "stop_sign", "parking_meter", "bench", "bird",
	"cat", "dog", "horse", "sheep", "cow",
	"elephant", "bear", "zebra", "giraffe", "backpack",
	"umbrella", "handbag", "tie", "suitcase", "frisbee",
	"skis", "snowboard", "sports_ball", "kite", "baseball_bat",
	"baseball_glove", "skateboard", "surfboard", "tennis_racket", "bottle",
	"wine_glass", "cup", "fork", "knife", "spoon",
	"bowl", "banana", "apple", "sandwich", "orange",
	"broccoli", "carrot", "hot_dog", "pizza", "donut",
	"cake", "chair", "sofa", "pottedplant", "bed",
	"diningtable", "toilet", "tvmonitor", "laptop", "mouse",
	"remote", "keyboard", "cell_phone", "microwave", "oven",
	"toaster", "sink", "refrigerator", "book", "clock",
	"vase", "scissors", "teddy_bear", "hair_drier", "toothbrush",
}

var cocoByName = lo.SliceToMap(CocoItemTypes(), func(c CocoItemType) (string, CocoItemType) {
	return cocoNames[c], c
})

// Valid reports whether c is a known class.
func (c CocoItemType) Valid() bool {
	return c >= 0 && int(c) < NumCocoItemTypes
}

// String returns the snake_case class id, e.g. "traffic_light".
func (c CocoItemType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CocoItemType(%d)", int(c))
	}
	return cocoNames[c]
}

// DisplayName returns a human-readable label, e.g. "Traffic Light".
func (c CocoItemType) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(c.String(), "_", " "))
}

// ParseCocoItemType returns the class with the given id. Spaces are
// accepted in place of underscores and case is ignored.
func ParseCocoItemType(s string) (CocoItemType, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	if c, ok := cocoByName[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("objdetect: unknown COCO class %q", s)
}

// CocoItemTypes returns every class in index order.
func CocoItemTypes() []CocoItemType {
	return lo.Times(NumCocoItemTypes, func(i int) CocoItemType { return CocoItemType(i) })
}
