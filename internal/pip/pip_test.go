package pip

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Fus3n/python-project-manager/internal/testutil"
	"github.com/Fus3n/python-project-manager/internal/venv"
)

func TestInstall_success(t *testing.T) {
	env := testutil.CreateFakeEnv(t, t.TempDir())
	inst := &Installer{Env: env.Layout}

	res, err := inst.Install(context.Background(), "requests==2.31.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Stdout, "ok install requests==2.31.0") {
		t.Errorf("stdout = %q", res.Stdout)
	}
	want := []string{"install requests==2.31.0"}
	if got := env.PipCalls(t); !reflect.DeepEqual(got, want) {
		t.Errorf("pip calls = %v, want %v", got, want)
	}
}

func TestInstall_nonZeroExit(t *testing.T) {
	env := testutil.CreateFakeEnv(t, t.TempDir())
	env.FailOn(t, "broken")
	inst := &Installer{Env: env.Layout}

	res, err := inst.Install(context.Background(), "broken==1.0")
	if !errors.Is(err, ErrProcess) {
		t.Fatalf("err = %v, want ErrProcess", err)
	}
	var pe *ProcessError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ProcessError", err)
	}
	if pe.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", pe.ExitCode)
	}
	if !strings.Contains(res.Stderr, "could not process broken==1.0") {
		t.Errorf("stderr = %q", res.Stderr)
	}
	if !strings.Contains(err.Error(), "could not process") {
		t.Errorf("error message should include the last stderr line: %v", err)
	}
}

func TestUninstall_isNonInteractive(t *testing.T) {
	env := testutil.CreateFakeEnv(t, t.TempDir())
	inst := &Installer{Env: env.Layout}

	if _, err := inst.Uninstall(context.Background(), "requests"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"uninstall -y requests"}
	if got := env.PipCalls(t); !reflect.DeepEqual(got, want) {
		t.Errorf("pip calls = %v, want %v", got, want)
	}
}

func TestInstallAll_singleInvocation(t *testing.T) {
	env := testutil.CreateFakeEnv(t, t.TempDir())
	inst := &Installer{Env: env.Layout}

	if _, err := inst.InstallAll(context.Background(), []string{"a==1", "b==2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"install a==1 b==2"}
	if got := env.PipCalls(t); !reflect.DeepEqual(got, want) {
		t.Errorf("pip calls = %v, want %v", got, want)
	}
}

func TestInstallAll_allOrNothing(t *testing.T) {
	env := testutil.CreateFakeEnv(t, t.TempDir())
	env.FailOn(t, "b")
	inst := &Installer{Env: env.Layout}

	if _, err := inst.InstallAll(context.Background(), []string{"a==1", "b==2"}); err == nil {
		t.Fatal("expected the combined invocation to fail")
	}
}

func TestRun_environmentMissing(t *testing.T) {
	inst := &Installer{Env: venv.New(t.TempDir(), "")}

	_, err := inst.Install(context.Background(), "requests")
	if !errors.Is(err, ErrEnvironmentMissing) {
		t.Fatalf("err = %v, want ErrEnvironmentMissing", err)
	}
	if errors.Is(err, ErrProcess) {
		t.Error("missing environment must not be reported as a process failure")
	}
}

func TestInstall_teesOutput(t *testing.T) {
	env := testutil.CreateFakeEnv(t, t.TempDir())
	var out strings.Builder
	inst := &Installer{Env: env.Layout, Stdout: &out}

	if _, err := inst.Install(context.Background(), "click"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "ok install click") {
		t.Errorf("streamed stdout = %q", out.String())
	}
}
