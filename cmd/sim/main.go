// Command sim runs the sandbox headless for a fixed number of ticks and logs
// the outcome.
package main

import (
	"flag"
	"os"

	"github.com/milk9111/boneyard/logger"
	"github.com/milk9111/boneyard/scene"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Uint("seed", 1, "skeleton seed (0 = crypto)")
	skeletons := flag.Int("skeletons", 3, "number of skeletons to spawn")
	ticks := flag.Int("ticks", 3600, "ticks to simulate at 60 TPS")
	every := flag.Int("every", 600, "log a snapshot every N ticks (0 = only at the end)")
	flag.Parse()

	log := logger.New(os.Stderr)
	s, err := scene.Build(scene.Options{
		Skeletons: *skeletons,
		Seed:      uint32(*seed),
		Log:       log,
	})
	if err != nil {
		log.WithError(err).Fatal("sim: build scene")
	}

	for i := 1; i <= *ticks; i++ {
		s.Update()
		if *every > 0 && i%*every == 0 {
			report(log, s.Stats(), "sim: snapshot")
		}
		if s.Stats().Skeletons == 0 {
			break
		}
	}
	report(log, s.Stats(), "sim: done")
}

func report(log logrus.FieldLogger, st scene.Stats, msg string) {
	fields := logrus.Fields{
		"tick":         st.Frames,
		"ms":           st.Now,
		"skeletons":    st.Skeletons,
		"flying":       st.Flying,
		"global_light": st.GlobalLight,
		"player_hp":    st.PlayerHealth,
	}
	for _, name := range st.StateNames() {
		fields["state_"+string(name)] = st.States[name]
	}
	log.WithFields(fields).Info(msg)
}
