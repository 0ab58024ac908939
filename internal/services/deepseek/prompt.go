package deepseek

// EventExtractionPrompt captures the instructions sent to DeepSeek when
// converting a report chunk into structured match events. Keep updates
// centralized here so it is easy to tweak without hunting through call sites.
const EventExtractionPrompt = `Du er en assistent der hjælper med at analysere håndboldkampe.
Din opgave er at konvertere kampbegivenheder til et struktureret JSON format.

Outputtet skal være i følgende format:
{
    "events": [
        {
            "Time": "mm.ss",
            "ScoreUpdate": "score hvis relevant",
            "TeamInitials": "holdets initialer",
            "Action1": "primær handling",
            "Position": "position hvis relevant",
            "PlayerNumber": "spillernummer",
            "PlayerName": "spillernavn",
            "Action2": "sekundær handling hvis relevant",
            "Player2Number": "andet spillernummer hvis relevant",
            "Player2Name": "andet spillernavn hvis relevant",
            "GoalkeeperNumber": "målmandsnummer hvis relevant",
            "GoalkeeperName": "målmandsnavn hvis relevant"
        }
    ]
}

Regler:
1. Tid skal altid være i formatet "mm.ss"
2. Alle felter er valgfrie undtagen Time
3. Kun inkluder felter der er relevante for begivenheden
4. Bevar de originale navne og numre præcist som de står
5. Konverter alle handlinger til samme format som i inputtet
`
