package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lexiqai/speech-synth/internal/config"
	"github.com/lexiqai/speech-synth/internal/tts"
	"github.com/lexiqai/speech-synth/internal/tts/ttstest"
)

type harness struct {
	fake        *ttstest.FakeSynthesizer
	clientCalls int
	reads       []string
	deps        *Deps
}

func newHarness() *harness {
	h := &harness{fake: &ttstest.FakeSynthesizer{Audio: []byte{0x00, 0x01, 0x02}}}
	h.deps = &Deps{
		Config: &config.Config{
			LanguageCode:     "en-US",
			Timeout:          5,
			RetryMaxAttempts: 1,
			MetricsJob:       "speech-synth",
		},
		NewClient: func(ctx context.Context) (tts.Synthesizer, error) {
			h.clientCalls++
			return h.fake, nil
		},
		ReadFile: func(name string) ([]byte, error) {
			h.reads = append(h.reads, name)
			return os.ReadFile(name)
		},
		Logger: zerolog.Nop(),
	}
	return h
}

func (h *harness) run(cmd *cobra.Command, args ...string) (stdout, stderr string, code int) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	code = Execute(context.Background(), cmd, h.deps)
	return out.String(), errOut.String(), code
}

// chdir switches into a fresh temp dir for the duration of the test
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveInputFile(t *testing.T) {
	f, err := ResolveInputFile("hello.txt", "")
	require.NoError(t, err)
	assert.Equal(t, InputFile{Kind: tts.InputText, Path: "hello.txt"}, f)

	f, err = ResolveInputFile("", "hello.ssml")
	require.NoError(t, err)
	assert.Equal(t, InputFile{Kind: tts.InputSSML, Path: "hello.ssml"}, f)

	_, err = ResolveInputFile("a.txt", "b.ssml")
	assert.Equal(t, tts.KindConfig, tts.KindOf(err))

	_, err = ResolveInputFile("", "")
	assert.Equal(t, tts.KindConfig, tts.KindOf(err))
}

func TestLoadInput_ReadError(t *testing.T) {
	readErr := errors.New("permission denied")
	_, err := LoadInput(InputFile{Kind: tts.InputText, Path: "x"}, func(string) ([]byte, error) {
		return nil, readErr
	})

	assert.Equal(t, tts.KindIO, tts.KindOf(err))
	assert.ErrorIs(t, err, readErr)
}

func TestSynthesizeFile_RejectsInvalidFlagCombinations(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"both", []string{"--text", "a.txt", "--ssml", "b.ssml"}, "[text ssml]"},
		{"neither", []string{}, "[text ssml]"},
		{"empty text", []string{"--text", ""}, "exactly one of --text or --ssml is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdir(t)
			h := newHarness()

			_, stderr, code := h.run(NewSynthesizeFileCommand(h.deps), tt.args...)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.message)
			assert.Empty(t, h.reads, "no file may be read")
			assert.Zero(t, h.clientCalls, "no client may be created")
			assert.Zero(t, h.fake.Calls(), "no remote call may be made")
			assert.NoFileExists(t, filepath.Join(dir, FileOutputPath))
		})
	}
}

func TestSynthesizeFile_Text(t *testing.T) {
	dir := chdir(t)
	h := newHarness()
	input := writeInput(t, dir, "hello.txt", "Hello there.")

	stdout, stderr, code := h.run(NewSynthesizeFileCommand(h.deps), "--text", input)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Audio content written to file \"output.mp3\"\n", stdout)

	got, err := os.ReadFile(filepath.Join(dir, FileOutputPath))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, got)

	require.Len(t, h.fake.Requests, 1)
	req := h.fake.Requests[0]
	assert.Equal(t, "Hello there.", req.GetInput().GetText())
	assert.Equal(t, "en-US", req.GetVoice().GetLanguageCode())
	assert.Equal(t, texttospeechpb.SsmlVoiceGender_FEMALE, req.GetVoice().GetSsmlGender())
	assert.Equal(t, texttospeechpb.AudioEncoding_MP3, req.GetAudioConfig().GetAudioEncoding())
	assert.Empty(t, req.GetAudioConfig().GetEffectsProfileId())
	assert.True(t, h.fake.Closed)
}

func TestSynthesizeFile_SSML(t *testing.T) {
	dir := chdir(t)
	h := newHarness()
	input := writeInput(t, dir, "hello.ssml", "<speak>Hello</speak>")

	_, stderr, code := h.run(NewSynthesizeFileCommand(h.deps), "--ssml", input)

	require.Equal(t, 0, code, stderr)
	require.Len(t, h.fake.Requests, 1)

	ssml, ok := h.fake.Requests[0].GetInput().GetInputSource().(*texttospeechpb.SynthesisInput_Ssml)
	require.True(t, ok, "expected the ssml variant")
	assert.Equal(t, "<speak>Hello</speak>", ssml.Ssml)
	assert.Equal(t, []string{input}, h.reads)
}

func TestSynthesizeFile_MissingInputFile(t *testing.T) {
	dir := chdir(t)
	h := newHarness()

	_, stderr, code := h.run(NewSynthesizeFileCommand(h.deps), "--text", filepath.Join(dir, "missing.txt"))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "read text file")
	assert.Zero(t, h.clientCalls)
	assert.NoFileExists(t, filepath.Join(dir, FileOutputPath))
}

func TestSynthesizeFile_RemoteFailure(t *testing.T) {
	dir := chdir(t)
	h := newHarness()
	h.fake.Errs = []error{status.Error(codes.Unauthenticated, "request had invalid authentication credentials")}
	input := writeInput(t, dir, "hello.txt", "Hello")

	stdout, stderr, code := h.run(NewSynthesizeFileCommand(h.deps), "--text", input)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Unauthenticated")
	assert.Empty(t, stdout)
	assert.NoFileExists(t, filepath.Join(dir, FileOutputPath))
}

func TestSynthesizeFile_ClientConstructionFailure(t *testing.T) {
	dir := chdir(t)
	h := newHarness()
	h.deps.NewClient = func(ctx context.Context) (tts.Synthesizer, error) {
		return nil, tts.NewRemoteError("create texttospeech client", errors.New("could not find default credentials"))
	}
	input := writeInput(t, dir, "hello.txt", "Hello")

	_, stderr, code := h.run(NewSynthesizeFileCommand(h.deps), "--text", input)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "could not find default credentials")
	assert.NoFileExists(t, filepath.Join(dir, FileOutputPath))
}

func TestAudioProfile_WritesToOutputOnly(t *testing.T) {
	dir := chdir(t)
	h := newHarness()
	output := filepath.Join(dir, "profile.mp3")

	stdout, stderr, code := h.run(NewAudioProfileCommand(h.deps),
		"--text", "hello",
		"--effects_profile_id", "telephony-class-application",
		"--output", output,
	)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Audio content written to file \""+output+"\"\n", stdout)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, got)
	assert.NoFileExists(t, filepath.Join(dir, FileOutputPath))

	require.Len(t, h.fake.Requests, 1)
	req := h.fake.Requests[0]
	assert.Equal(t, "hello", req.GetInput().GetText())
	assert.Equal(t, texttospeechpb.SsmlVoiceGender_SSML_VOICE_GENDER_UNSPECIFIED, req.GetVoice().GetSsmlGender())
	assert.Equal(t, []string{"telephony-class-application"}, req.GetAudioConfig().GetEffectsProfileId())
	assert.Empty(t, h.reads)
}

func TestAudioProfile_RepeatedProfilesKeepOrder(t *testing.T) {
	dir := chdir(t)
	h := newHarness()

	_, stderr, code := h.run(NewAudioProfileCommand(h.deps),
		"--text", "hello",
		"--effects_profile_id", "wearable-class-device",
		"--effects_profile_id", "telephony-class-application",
		"--effects_profile_id", "wearable-class-device",
		"--output", filepath.Join(dir, "out.mp3"),
	)

	require.Equal(t, 0, code, stderr)
	require.Len(t, h.fake.Requests, 1)
	assert.Equal(t,
		[]string{"wearable-class-device", "telephony-class-application", "wearable-class-device"},
		h.fake.Requests[0].GetAudioConfig().GetEffectsProfileId())
}

func TestAudioProfile_MissingRequiredFlag(t *testing.T) {
	h := newHarness()

	_, stderr, code := h.run(NewAudioProfileCommand(h.deps), "--text", "hello", "--output", "out.mp3")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "effects_profile_id")
	assert.Zero(t, h.clientCalls)
}

func TestAudioProfile_VoiceName(t *testing.T) {
	dir := chdir(t)
	h := newHarness()

	_, stderr, code := h.run(NewAudioProfileCommand(h.deps),
		"--text", "hello",
		"--effects_profile_id", "handset-class-device",
		"--voice_name", "en-US-Standard-C",
		"--output", filepath.Join(dir, "out.mp3"),
	)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "en-US-Standard-C", h.fake.Requests[0].GetVoice().GetName())
}

func TestAudioProfile_DryRun(t *testing.T) {
	dir := chdir(t)
	h := newHarness()
	output := filepath.Join(dir, "out.mp3")

	stdout, stderr, code := h.run(NewAudioProfileCommand(h.deps),
		"--text", "hello",
		"--effects_profile_id", "telephony-class-application",
		"--output", output,
		"--dry_run",
	)

	require.Equal(t, 0, code, stderr)
	assert.Zero(t, h.clientCalls)
	assert.NoFileExists(t, output)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Contains(t, stdout, "telephony-class-application")
	assert.Contains(t, stdout, "MP3")
}

func TestListVoices(t *testing.T) {
	h := newHarness()
	h.fake.Voices = []*texttospeechpb.Voice{
		{
			Name:                   "en-US-Standard-C",
			LanguageCodes:          []string{"en-US"},
			SsmlGender:             texttospeechpb.SsmlVoiceGender_FEMALE,
			NaturalSampleRateHertz: 24000,
		},
	}

	stdout, stderr, code := h.run(NewListVoicesCommand(h.deps), "--language_code", "en-US")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Name: en-US-Standard-C\n"+
		"  Language codes: en-US\n"+
		"  SSML voice gender: FEMALE\n"+
		"  Natural sample rate hertz: 24000\n", stdout)
	require.Len(t, h.fake.VoiceRequests, 1)
	assert.Equal(t, "en-US", h.fake.VoiceRequests[0].GetLanguageCode())
}

func TestExecute_PushesMetrics(t *testing.T) {
	pushed := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushed++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dir := chdir(t)
	h := newHarness()
	h.deps.Config.MetricsEnabled = true
	h.deps.Config.PushgatewayURL = server.URL

	_, stderr, code := h.run(NewAudioProfileCommand(h.deps),
		"--text", "hello",
		"--effects_profile_id", "telephony-class-application",
		"--output", filepath.Join(dir, "out.mp3"),
	)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 1, pushed)
}
