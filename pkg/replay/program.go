package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

// AccountWrite is one account mutation produced by applying an instruction.
type AccountWrite struct {
	Pubkey string `json:"pubkey"`
	// Data is the post-image. Ignored when Delete is set.
	Data []byte `json:"data"`
	// Delete closes the account.
	Delete bool `json:"delete"`
}

// Program applies the domain semantics of one instruction: given the decoded
// instruction and the pre-images of its writable accounts, it produces the
// account writes. The production implementation executes the deployed
// program binary in an external sandbox; tests substitute a fake.
type Program interface {
	// Deploy hands the program a new binary after a program-deploy
	// instruction.
	Deploy(programData []byte) error

	// Execute applies one instruction and returns its account writes.
	Execute(ix whirlpool.DecodedInstruction, snapshot *WritableAccountSnapshot) ([]AccountWrite, error)
}

// SandboxProgram runs the deployed program binary in an external sandbox
// helper process, one JSON request/response pair per instruction over the
// helper's stdio.
type SandboxProgram struct {
	cmd    *exec.Cmd
	stdin  *json.Encoder
	stdout *json.Decoder
}

type sandboxRequest struct {
	Op          string            `json:"op"`
	Name        string            `json:"name,omitempty"`
	Instruction interface{}       `json:"instruction,omitempty"`
	Accounts    map[string][]byte `json:"accounts,omitempty"`
	ProgramData []byte            `json:"program_data,omitempty"`
}

type sandboxResponse struct {
	Writes []AccountWrite `json:"writes"`
	Error  string         `json:"error,omitempty"`
}

// NewSandboxProgram starts the sandbox helper and hands it the initial
// program binary.
func NewSandboxProgram(helperPath string, programData []byte) (*SandboxProgram, error) {
	cmd := exec.Command(helperPath)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open sandbox stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open sandbox stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start sandbox %s: %w", helperPath, err)
	}

	p := &SandboxProgram{
		cmd:    cmd,
		stdin:  json.NewEncoder(stdin),
		stdout: json.NewDecoder(bufio.NewReader(stdout)),
	}
	if err := p.Deploy(programData); err != nil {
		_ = cmd.Process.Kill()
		return nil, err
	}
	return p, nil
}

func (p *SandboxProgram) Deploy(programData []byte) error {
	_, err := p.roundTrip(sandboxRequest{Op: "deploy", ProgramData: programData})
	return err
}

func (p *SandboxProgram) Execute(ix whirlpool.DecodedInstruction, snapshot *WritableAccountSnapshot) ([]AccountWrite, error) {
	pre := make(map[string][]byte, snapshot.Len())
	for _, pubkey := range ix.WritableAccounts() {
		data, exists, err := snapshot.Get(pubkey)
		if err != nil {
			return nil, err
		}
		if exists {
			pre[pubkey] = data
		}
	}

	resp, err := p.roundTrip(sandboxRequest{
		Op:          "execute",
		Name:        ix.Name(),
		Instruction: ix,
		Accounts:    pre,
	})
	if err != nil {
		return nil, err
	}
	return resp.Writes, nil
}

func (p *SandboxProgram) roundTrip(req sandboxRequest) (*sandboxResponse, error) {
	if err := p.stdin.Encode(&req); err != nil {
		return nil, fmt.Errorf("failed to write to sandbox: %w", err)
	}
	var resp sandboxResponse
	if err := p.stdout.Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to read from sandbox: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("sandbox rejected %s: %s", req.Op, resp.Error)
	}
	return &resp, nil
}

// Close shuts the helper down.
func (p *SandboxProgram) Close() error {
	if err := p.cmd.Process.Kill(); err != nil {
		return err
	}
	_ = p.cmd.Wait()
	return nil
}
