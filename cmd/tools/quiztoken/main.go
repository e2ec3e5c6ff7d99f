// quiztoken is a developer tool for inspecting transport tokens: it encodes
// a quiz from flags and decodes (and scores) existing tokens.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/zhoulin/matchquiz/internal/codec"
	"github.com/zhoulin/matchquiz/internal/model/quiz"
	"github.com/zhoulin/matchquiz/internal/score"
	"github.com/zhoulin/matchquiz/internal/service/session"
)

type repeatedFlag []string

func (f *repeatedFlag) String() string {
	return strings.Join(*f, ", ")
}

func (f *repeatedFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	log.SetFlags(0)

	mode := flag.String("mode", "", "tool mode: encode or decode")
	owner := flag.String("owner", "Charles", "owner display name (encode)")
	token := flag.String("token", "", "transport token (decode)")

	var questions, answers repeatedFlag
	flag.Var(&questions, "q", "question text, repeatable (encode)")
	flag.Var(&answers, "a", "owner answer for the matching -q, repeatable (encode)")

	flag.Parse()

	switch *mode {
	case "encode":
		runEncode(*owner, questions, answers)
	case "decode":
		runDecode(*token)
	default:
		flag.Usage()
		log.Fatal("specify -mode=encode or -mode=decode")
	}
}

func runEncode(owner string, questions, answers []string) {
	rows := make([]quiz.Pair, len(questions))
	for i, q := range questions {
		rows[i].Question = q
		if i < len(answers) {
			rows[i].Answer = answers[i]
		}
	}

	payload, err := session.NewService().Author(owner, rows)
	if err != nil {
		log.Fatalf("cannot author quiz: %v", err)
	}

	token := codec.Encode(payload)
	if token == "" {
		log.Fatal("cannot encode quiz")
	}

	fmt.Printf("token: %s\n", token)
	fmt.Printf("path:  /quiz?data=%s\n", url.QueryEscape(token))
}

func runDecode(token string) {
	payload, ok := codec.Decode(strings.TrimSpace(token))
	if !ok {
		log.Fatal("token is missing, malformed, or uses an unknown version")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		log.Fatalf("cannot print payload: %v", err)
	}

	if payload.Partner != nil {
		result := score.Score(payload.Pairs, payload.Partner.Answers)
		fmt.Printf("score: %d/%d (%d%%, %s)\n",
			result.Matches, result.Total, result.Percent, score.TierFor(result.Percent))
	}
}
