// Command mkv-webrtc plays the VP8 track of a WebM file into a WebRTC
// peer connection. It reads a base64 SDP offer on stdin and prints the
// answer on stdout, like the pion example tooling.
package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media"

	"github.com/b01o/mkv-element/matroska"
)

var file = flag.String("file", "input.webm", "WebM file with a VP8 track")

func main() {
	flag.Parse()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	view, err := matroska.NewView(f)
	if err != nil {
		log.Fatal(err)
	}
	seg := &view.Segments[0]
	track := findVP8Track(seg)
	if track == nil {
		log.Fatal("no VP8 track in", *file)
	}

	pc, err := webrtc.NewPeerConnection(webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{{URLs: []string{"stun:stun.l.google.com:19302"}}},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer pc.Close()

	videoTrack, err := webrtc.NewTrackLocalStaticSample(
		webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP8}, "video", "mkv-element")
	if err != nil {
		log.Fatal(err)
	}
	if _, err = pc.AddTrack(videoTrack); err != nil {
		log.Fatal(err)
	}

	done := make(chan struct{})
	pc.OnICEConnectionStateChange(func(state webrtc.ICEConnectionState) {
		log.Println("ice state:", state)
		if state == webrtc.ICEConnectionStateConnected {
			go stream(f, seg, track, videoTrack, done)
		}
	})

	offer := readOffer()
	if err = pc.SetRemoteDescription(offer); err != nil {
		log.Fatal(err)
	}
	answer, err := pc.CreateAnswer(nil)
	if err != nil {
		log.Fatal(err)
	}
	gathered := webrtc.GatheringCompletePromise(pc)
	if err = pc.SetLocalDescription(answer); err != nil {
		log.Fatal(err)
	}
	<-gathered
	writeAnswer(pc.LocalDescription())
	<-done
}

func findVP8Track(seg *matroska.SegmentView) *matroska.TrackEntry {
	if seg.Tracks == nil {
		return nil
	}
	for i := range seg.Tracks.TrackEntry {
		t := &seg.Tracks.TrackEntry[i]
		if string(t.CodecID) == "V_VP8" {
			return t
		}
	}
	return nil
}

func stream(f *os.File, seg *matroska.SegmentView, entry *matroska.TrackEntry, track *webrtc.TrackLocalStaticSample, done chan struct{}) {
	defer close(done)

	// Segment ticks to wall clock: tick duration is the timestamp scale
	// in nanoseconds.
	scale := time.Duration(seg.Info.TimestampScale)
	var last time.Duration

	for _, ref := range seg.Clusters {
		cluster, err := ref.Read(f)
		if err != nil {
			log.Println("cluster:", err)
			return
		}
		frames, err := cluster.Frames()
		if err != nil {
			log.Println("frames:", err)
			return
		}
		for _, fr := range frames {
			if fr.TrackNumber != uint64(entry.TrackNumber) {
				continue
			}
			ts := time.Duration(fr.Timestamp) * scale
			dur := ts - last
			if dur <= 0 {
				dur = scale
			}
			last = ts
			time.Sleep(dur)
			if err := track.WriteSample(media.Sample{Data: fr.Data, Duration: dur}); err != nil {
				log.Println("write sample:", err)
				return
			}
		}
	}
}

func readOffer() webrtc.SessionDescription {
	fmt.Println("paste base64 offer:")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)
	if !scanner.Scan() {
		log.Fatal("no offer on stdin")
	}
	raw, err := base64.StdEncoding.DecodeString(scanner.Text())
	if err != nil {
		log.Fatal(err)
	}
	var offer webrtc.SessionDescription
	if err := json.Unmarshal(raw, &offer); err != nil {
		log.Fatal(err)
	}
	return offer
}

func writeAnswer(desc *webrtc.SessionDescription) {
	raw, err := json.Marshal(desc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(base64.StdEncoding.EncodeToString(raw))
}
