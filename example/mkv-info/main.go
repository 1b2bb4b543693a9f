// Command mkv-info prints the metadata of a Matroska/WebM file without
// loading cluster data into memory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/b01o/mkv-element/matroska"
)

func main() {
	debug := flag.Bool("debug", false, "log skipped unknown elements")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: mkv-info [-debug] <file.mkv>")
	}
	matroska.Debug = *debug

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	view, err := matroska.NewView(f)
	if err != nil {
		log.Fatal(err)
	}

	if dt := view.Ebml.DocType; dt != nil {
		fmt.Println("doc type:", string(*dt))
	}
	for i, seg := range view.Segments {
		fmt.Printf("segment %d\n", i)
		fmt.Println("  timestamp scale:", uint64(seg.Info.TimestampScale))
		fmt.Println("  muxing app:", string(seg.Info.MuxingApp))
		fmt.Println("  writing app:", string(seg.Info.WritingApp))
		if seg.Info.Duration != nil {
			fmt.Println("  duration:", float64(*seg.Info.Duration))
		}
		if seg.Info.Title != nil {
			fmt.Println("  title:", string(*seg.Info.Title))
		}
		if seg.Tracks != nil {
			for _, t := range seg.Tracks.TrackEntry {
				fmt.Printf("  track %d: type=%d codec=%s", uint64(t.TrackNumber), uint64(t.TrackType), string(t.CodecID))
				if t.Video != nil {
					fmt.Printf(" %dx%d", uint64(t.Video.PixelWidth), uint64(t.Video.PixelHeight))
				}
				if t.Audio != nil {
					fmt.Printf(" %gHz ch=%d", float64(t.Audio.SamplingFrequency), uint64(t.Audio.Channels))
				}
				fmt.Println()
			}
		}
		fmt.Println("  clusters:", len(seg.Clusters))
	}
}
