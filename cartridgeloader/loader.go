// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
)

// Loader is used to specify the cartridge to use when attaching to the NES.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte

	// the header of the loaded data. only valid after a successful call to
	// Image()
	Header Header
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file", "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}

// Image parses the loaded data and returns an image suitable for attaching to
// the NES. The trainer, if present, is skipped.
func (cl *Loader) Image() (cartridge.Image, error) {
	h, err := ParseHeader(cl.Data)
	if err != nil {
		return cartridge.Image{}, err
	}
	cl.Header = h

	if h.PRGSize < 0 {
		return cartridge.Image{}, curated.Errorf(InvalidSize, "PRG")
	}
	if h.CHRSize < 0 {
		return cartridge.Image{}, curated.Errorf(InvalidSize, "CHR")
	}

	offset := headerSize
	if h.Trainer {
		offset += trainerSize
	}

	expected := offset + h.PRGSize + h.CHRSize
	if len(cl.Data) < expected {
		return cartridge.Image{}, curated.Errorf(TruncatedFile, expected, len(cl.Data))
	}

	img := cartridge.Image{
		Filename:  cl.Filename,
		Hash:      cl.Hash,
		MapperID:  h.MapperID,
		Mirroring: h.Mirroring,
		PRGRAM:    h.PRGRAM,
		Battery:   h.Battery,
	}

	img.PRG = cl.Data[offset : offset+h.PRGSize]
	offset += h.PRGSize
	img.CHR = cl.Data[offset : offset+h.CHRSize]

	return img, nil
}
