// Package fabricate makes up new dogs from real registry data.
//
// A made up dog gets a name from one random registry record and a birth
// year from another, so the pair does not have to exist in the registry.
// Its picture comes from an unrelated image service.
package fabricate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path"
	"path/filepath"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/gnames/wuff/pkg/dog"
)

// ImageLister lists relative paths of available dog pictures.
type ImageLister interface {
	List(ctx context.Context) ([]string, error)
}

// Dog is a made up dog.
type Dog struct {
	// ID is derived from the Label, equal dogs get equal IDs.
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Sex       dog.Sex `json:"sex"`
	BirthYear int     `json:"birthYear"`

	// Image is the picture path relative to the image service.
	Image string `json:"image"`

	// Label is a short human-readable description of the dog.
	Label string `json:"label"`

	// Path is where the picture of the dog should be saved.
	Path string `json:"path"`
}

// Fabricator makes up dogs.
type Fabricator struct {
	images ImageLister
	outDir string
	rnd    *rand.Rand
}

// New creates a Fabricator that saves pictures to outDir.
// If rnd is nil, a randomly seeded generator is used.
func New(images ImageLister, outDir string, rnd *rand.Rand) *Fabricator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	res := &Fabricator{
		images: images,
		outDir: outDir,
		rnd:    rnd,
	}
	return res
}

// Fabricate makes up a dog of random sex from dogs recorded in year.
// Zero year uses all records. Dogs with unknown names are not used.
func (f *Fabricator) Fabricate(
	ctx context.Context,
	c *dog.Collection,
	year int,
) (Dog, error) {
	var res Dog
	sex := dog.Sexes[f.rnd.IntN(len(dog.Sexes))]

	dogs := c.Filter(
		dog.BySex(sex),
		dog.ByRecordYear(year),
		func(d dog.Dog) bool { return !d.IsUnnamed() },
	)
	if len(dogs) == 0 {
		return res, NoDogsError(sexWord(sex), year)
	}

	name := dogs[f.rnd.IntN(len(dogs))].Name
	birthYear := dogs[f.rnd.IntN(len(dogs))].BirthYear

	images, err := f.images.List(ctx)
	if err != nil {
		return res, err
	}
	if len(images) == 0 {
		return res, NoImagesError()
	}
	image := images[f.rnd.IntN(len(images))]

	label := fmt.Sprintf("%s %d (%s)", name, birthYear, sex)
	file := fmt.Sprintf("%s_%d%s", safeName(name), birthYear, path.Ext(image))
	res = Dog{
		ID:        gnuuid.New(label).String(),
		Name:      name,
		Sex:       sex,
		BirthYear: birthYear,
		Image:     image,
		Label:     label,
		Path:      filepath.Join(f.outDir, file),
	}
	return res, nil
}

func sexWord(s dog.Sex) string {
	if s == dog.Female {
		return "female"
	}
	return "male"
}

// safeName keeps a file name inside the output directory.
func safeName(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name)
}
