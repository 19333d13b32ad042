package checker

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"testing"
	"time"

	"corrector/config"
	"corrector/pkg/locale"
	"corrector/supervise"
)

func pinEnglish(t *testing.T) {
	t.Helper()
	t.Setenv(locale.OverrideLanguageEnv, "en")
	locale.Resolve()
}

func TestSupervisedSilentBody(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{}, func() error {
			return nil
		})
	})
	if rec.exited {
		t.Fatalf("silent body terminated the process (code %d)", rec.code)
	}
	if rec.stdout != "" || rec.stderr != "" {
		t.Fatalf("silent body produced output: stdout=%q stderr=%q", rec.stdout, rec.stderr)
	}
}

func TestSupervisedEchoesPrints(t *testing.T) {
	pinEnglish(t)
	var run *supervise.Run
	rec := interceptFail(t, func() {
		run = Supervised(context.Background(), Options{}, func() error {
			fmt.Println("Coucou")
			return nil
		})
	})
	if rec.exited {
		t.Fatalf("allowed prints terminated the process: %q", rec.stderr)
	}
	want := "Your code printed:\n\n    :::text\n    Coucou\n"
	if rec.stdout != want {
		t.Fatalf("echoed output = %q, want %q", rec.stdout, want)
	}
	if got := run.Out(); got != "Coucou" {
		t.Fatalf("run.Out() = %q, want %q", got, "Coucou")
	}
}

func TestSupervisedPrintsDenied(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{Policy: PrintsDenied}, func() error {
			fmt.Println("Coucou")
			return nil
		})
	})
	if !rec.exited || rec.code != 1 {
		t.Fatalf("denied prints should exit 1, got exited=%v code=%d", rec.exited, rec.code)
	}
	for _, fragment := range []string{"Your code printed:", "Coucou"} {
		if !strings.Contains(rec.stderr, fragment) {
			t.Errorf("diagnostic %q misses %q", rec.stderr, fragment)
		}
	}
	if rec.stdout != "" {
		t.Errorf("denied prints leaked to stdout: %q", rec.stdout)
	}
}

func TestSupervisedPrintsHidden(t *testing.T) {
	pinEnglish(t)
	var run *supervise.Run
	rec := interceptFail(t, func() {
		run = Supervised(context.Background(), Options{Policy: PrintsHidden}, func() error {
			fmt.Print("secret")
			return nil
		})
	})
	if rec.exited {
		t.Fatalf("hidden prints terminated the process: %q", rec.stderr)
	}
	if rec.stdout != "" || rec.stderr != "" {
		t.Fatalf("hidden prints were echoed: stdout=%q stderr=%q", rec.stdout, rec.stderr)
	}
	if got := run.Out(); got != "secret" {
		t.Fatalf("run.Out() = %q, want %q", got, "secret")
	}
}

func TestSupervisedHookTakesOver(t *testing.T) {
	pinEnglish(t)
	var hookedOut, hookedErr string
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{
			Policy: PrintsDenied,
			Hook: func(out, err string) {
				hookedOut, hookedErr = out, err
			},
		}, func() error {
			fmt.Print("hello")
			fmt.Fprint(os.Stderr, "oops")
			return nil
		})
	})
	if rec.exited {
		t.Fatalf("hook should override the policy, got exit %d: %q", rec.code, rec.stderr)
	}
	if hookedOut != "hello" || hookedErr != "oops" {
		t.Fatalf("hook got out=%q err=%q", hookedOut, hookedErr)
	}
}

func TestSupervisedPrintExpect(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{PrintExpect: "42"}, func() error {
			fmt.Println("42")
			return nil
		})
	})
	if !rec.exited {
		t.Fatal("printing the expected value should fail the check")
	}
	if !strings.Contains(rec.stderr, "maybe you should return it") {
		t.Errorf("diagnostic %q misses the print-expect nudge", rec.stderr)
	}
}

func TestSupervisedPanicRendersTraceback(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{}, func() error {
			panic("Pouette")
		})
	})
	if !rec.exited || rec.code != 1 {
		t.Fatalf("panic should exit 1, got exited=%v code=%d", rec.exited, rec.code)
	}
	for _, fragment := range []string{"Traceback", "Pouette"} {
		if !strings.Contains(rec.stderr, fragment) {
			t.Errorf("diagnostic %q misses %q", rec.stderr, fragment)
		}
	}
	if rec.stdout != "" {
		t.Errorf("panic diagnostic leaked to stdout: %q", rec.stdout)
	}
}

func TestSupervisedPanicExceptionPrefix(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{
			ExceptionPrefix: []string{"While checking your function:"},
		}, func() error {
			panic("boom")
		})
	})
	if !rec.exited {
		t.Fatal("panic should fail the check")
	}
	if !strings.Contains(rec.stderr, "While checking your function:") {
		t.Errorf("diagnostic %q misses the exception prefix", rec.stderr)
	}
}

func TestSupervisedTimeout(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{Timeout: 50 * time.Millisecond}, func() error {
			time.Sleep(5 * time.Second)
			return nil
		})
	})
	if !rec.exited || rec.code != 1 {
		t.Fatalf("timeout should exit 1, got exited=%v code=%d", rec.exited, rec.code)
	}
	if !strings.Contains(rec.stderr, "too slow") {
		t.Errorf("diagnostic %q misses the slowness message", rec.stderr)
	}
}

func TestSupervisedTooSlowOverride(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{
			Timeout: 50 * time.Millisecond,
			TooSlow: []string{"Your fibonacci is too slow, memoize it."},
		}, func() error {
			time.Sleep(5 * time.Second)
			return nil
		})
	})
	if !rec.exited {
		t.Fatal("timeout should fail the check")
	}
	if !strings.Contains(rec.stderr, "memoize it") {
		t.Errorf("diagnostic %q misses the custom message", rec.stderr)
	}
}

func TestSupervisedAttemptedExit(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{}, func() error {
			supervise.Exit(3)
			return nil
		})
	})
	if !rec.exited || rec.code != 1 {
		t.Fatalf("exit attempt should exit 1, got exited=%v code=%d", rec.exited, rec.code)
	}
	if !strings.Contains(rec.stderr, "tried to exit") {
		t.Errorf("diagnostic %q misses the exit message", rec.stderr)
	}
}

func TestSupervisedGoexit(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{}, func() error {
			runtime.Goexit()
			return nil
		})
	})
	if !rec.exited {
		t.Fatal("a vanished goroutine should be reported as an exit attempt")
	}
	if !strings.Contains(rec.stderr, "tried to exit") {
		t.Errorf("diagnostic %q misses the exit message", rec.stderr)
	}
}

func TestSupervisedBlockedInput(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{}, func() error {
			buf := make([]byte, 1)
			_, err := os.Stdin.Read(buf)
			return err
		})
	})
	if !rec.exited || rec.code != 1 {
		t.Fatalf("stdin read should exit 1, got exited=%v code=%d", rec.exited, rec.code)
	}
	if !strings.Contains(rec.stderr, "standard input") {
		t.Errorf("diagnostic %q misses the stdin message", rec.stderr)
	}
}

func TestSupervisedPrefix(t *testing.T) {
	pinEnglish(t)
	rec := interceptFail(t, func() {
		Supervised(context.Background(), Options{
			Prefix:  []string{"While testing `fib(10)`:"},
			Timeout: 50 * time.Millisecond,
		}, func() error {
			time.Sleep(5 * time.Second)
			return nil
		})
	})
	if !rec.exited {
		t.Fatal("timeout should fail the check")
	}
	if !strings.Contains(rec.stderr, "While testing `fib(10)`:") {
		t.Errorf("diagnostic %q misses the scope prefix", rec.stderr)
	}
}

func TestSupervisedWithDeniedPolicy(t *testing.T) {
	pinEnglish(t)
	cfg := config.Default()
	cfg.PrintPolicy = "denied"
	rec := interceptFail(t, func() {
		SupervisedWith(context.Background(), cfg, Options{}, func() error {
			fmt.Println("Coucou")
			return nil
		})
	})
	if !rec.exited || rec.code != 1 {
		t.Fatalf("configured denied prints should exit 1, got exited=%v code=%d", rec.exited, rec.code)
	}
	for _, fragment := range []string{"Your code printed:", "Coucou"} {
		if !strings.Contains(rec.stderr, fragment) {
			t.Errorf("diagnostic %q misses %q", rec.stderr, fragment)
		}
	}
}

func TestSupervisedWithConfiguredTimeout(t *testing.T) {
	pinEnglish(t)
	cfg := config.Default()
	cfg.Timeout = 50 * time.Millisecond
	cfg.Messages.TooSlow = "The grading machine is patient, but not that patient."
	rec := interceptFail(t, func() {
		SupervisedWith(context.Background(), cfg, Options{}, func() error {
			time.Sleep(5 * time.Second)
			return nil
		})
	})
	if !rec.exited {
		t.Fatal("configured timeout should fail the check")
	}
	if !strings.Contains(rec.stderr, "not that patient") {
		t.Errorf("diagnostic %q misses the configured message", rec.stderr)
	}
}

func TestSupervisedWithEnvTimeout(t *testing.T) {
	pinEnglish(t)
	t.Setenv(config.TimeoutEnv, "50ms")
	cfg := config.Default()
	rec := interceptFail(t, func() {
		SupervisedWith(context.Background(), cfg, Options{}, func() error {
			time.Sleep(5 * time.Second)
			return nil
		})
	})
	if !rec.exited || rec.code != 1 {
		t.Fatalf("env timeout should exit 1, got exited=%v code=%d", rec.exited, rec.code)
	}
	if !strings.Contains(rec.stderr, "too slow") {
		t.Errorf("diagnostic %q misses the slowness message", rec.stderr)
	}
}

func TestSupervisedWithOptionsOverride(t *testing.T) {
	pinEnglish(t)
	cfg := config.Default()
	cfg.Timeout = 5 * time.Second
	rec := interceptFail(t, func() {
		SupervisedWith(context.Background(), cfg, Options{Timeout: 50 * time.Millisecond}, func() error {
			time.Sleep(5 * time.Second)
			return nil
		})
	})
	if !rec.exited {
		t.Fatal("explicit options should win over the configuration")
	}
	if !strings.Contains(rec.stderr, "too slow") {
		t.Errorf("diagnostic %q misses the slowness message", rec.stderr)
	}
}
