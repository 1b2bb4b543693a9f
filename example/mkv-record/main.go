// Command mkv-record remuxes a Matroska file: metadata is re-encoded
// with a fresh segment UUID and this tool's app names, clusters are
// copied through the base decoder. Free disk space is checked before
// writing.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/b01o/mkv-element/ebml"
	"github.com/b01o/mkv-element/matroska"
)

var (
	in      = flag.String("in", "input.mkv", "source file")
	out     = flag.String("out", "output.mkv", "destination file")
	minFree = flag.Uint64("min-free", 256<<20, "minimum free bytes required on the destination disk")
)

func main() {
	flag.Parse()

	dir, err := filepath.Abs(filepath.Dir(*out))
	if err != nil {
		log.Fatal(err)
	}
	usage, err := disk.Usage(dir)
	if err != nil {
		log.Fatal(err)
	}
	if usage.Free < *minFree {
		log.Fatalf("not enough space on %s: %d bytes free, need %d", dir, usage.Free, *minFree)
	}

	src, err := os.Open(*in)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	view, err := matroska.NewView(src)
	if err != nil {
		log.Fatal(err)
	}
	seg := &view.Segments[0]

	// SeekHead and Cues hold byte positions that move during a remux;
	// they are dropped rather than rewritten stale.
	segment := matroska.Segment{
		Info:     seg.Info,
		Tracks:   seg.Tracks,
		Chapters: seg.Chapters,
		Tags:     seg.Tags,
	}
	uuid := matroska.NewSegmentUUID()
	segment.Info.SegmentUUID = &uuid
	segment.Info.MuxingApp = "mkv-element"
	segment.Info.WritingApp = "mkv-record"

	for _, ref := range seg.Clusters {
		cluster, err := ref.Read(src)
		if err != nil {
			log.Fatal(err)
		}
		segment.Cluster = append(segment.Cluster, *cluster)
	}

	dst, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer dst.Close()

	if err = ebml.WriteTo(dst, &view.Ebml); err != nil {
		log.Fatal(err)
	}
	if err = ebml.WriteTo(dst, &segment); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s: %d clusters", *out, len(segment.Cluster))
}
